package importer

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"
	"time"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/shared"
)

const (
	colCode       = "coupon code"
	colExpiration = "expiration date"
	colDateSent   = "date sent"
	colStatus     = "coupon status"

	ProviderDuolingo    resource.Provider    = "DUOLINGO"
	ServiceProctored    resource.ServiceCode = "DUOLINGO_TEST_PROCTORED"
	ServiceNonProctored resource.ServiceCode = "DUOLINGO_TEST_NON_PROCTORED"
)

var (
	requiredColumns = []string{colCode, colExpiration, colDateSent, colStatus}
	dateLayouts     = []string{"2006/01/02 15:04:05", "2006/01/02 15:04"}
)

// DuolingoImporter reads the coupon export Duolingo provides to partners. All rows of
// one file are stored in a single transaction.
type DuolingoImporter struct {
	uow      shared.UnitOfWork
	location *time.Location
	logger   *slog.Logger
}

func NewDuolingoImporter(uow shared.UnitOfWork, location *time.Location, logger *slog.Logger) *DuolingoImporter {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DuolingoImporter{
		uow:      uow,
		location: location,
		logger:   logger,
	}
}

type couponRow struct {
	line    int
	code    string
	expires string
	sent    string
	status  string
}

func (im *DuolingoImporter) Import(ctx context.Context, key resource.Key, r io.Reader) (*shared.ImportSummary, error) {
	rows, short, err := readCoupons(r)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrImportFailed)
	}

	summary := &shared.ImportSummary{Read: len(rows) + short, Skipped: short}
	err = im.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		imported, skipped := 0, short
		seen := make(map[string]struct{}, len(rows))

		for _, row := range rows {
			if _, dup := seen[row.code]; dup {
				skipped++
				continue
			}
			seen[row.code] = struct{}{}

			res, err := im.toResource(key, row)
			if err != nil {
				return err
			}
			if res == nil {
				skipped++
				continue
			}

			exists, err := tx.Reads().ResourceExists(ctx, res.Provider(), res.Code())
			if err != nil {
				return errs.Wrapf(err, "line %d: check existing code", row.line)
			}
			if exists {
				skipped++
				continue
			}

			if _, err := tx.Resources().Create(ctx, res); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Mark(errs.Wrapf(err, "line %d: code %s stored concurrently", row.line, res.Code()), errs.ErrImportFailed)
				}
				return errs.Wrapf(err, "line %d: store coupon", row.line)
			}
			imported++
		}

		summary.Imported, summary.Skipped = imported, skipped
		return nil
	})
	if err != nil {
		return nil, err
	}

	im.logger.DebugContext(ctx, "duolingo coupons parsed",
		"key", key.String(),
		"read", summary.Read,
		"imported", summary.Imported)
	return summary, nil
}

// toResource returns nil for rows that carry no usable code.
func (im *DuolingoImporter) toResource(key resource.Key, row couponRow) (*resource.ServiceResource, error) {
	code, err := resource.NewCode(row.code)
	if err != nil {
		return nil, nil
	}

	expires, err := im.parseDate(row.expires)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "line %d: %s", row.line, colExpiration), errs.ErrImportFailed)
	}
	sent, err := im.parseDate(row.sent)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "line %d: %s", row.line, colDateSent), errs.ErrImportFailed)
	}

	res, err := resource.NewServiceResource(key.Provider, serviceCodeFor(code, key.ServiceCode), code, mapStatus(row.status), expires, sent)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "line %d", row.line), errs.ErrImportFailed)
	}
	return res, nil
}

func (im *DuolingoImporter) parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, im.location); err == nil {
			return &t, nil
		}
	}
	return nil, errs.Newf("invalid date format: %q", s)
}

// readCoupons returns the usable rows and the number of rows shorter than the header.
func readCoupons(r io.Reader) ([]couponRow, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, 0, errs.New("CSV header is missing")
	}
	if err != nil {
		return nil, 0, errs.Wrap(err, "read CSV header")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[normalizeHeader(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, 0, errs.Newf("missing required column: %s", col)
		}
	}

	var (
		rows  []couponRow
		short int
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, errs.Wrapf(err, "read CSV line %d", line)
		}
		if len(record) < len(header) {
			short++
			continue
		}
		rows = append(rows, couponRow{
			line:    line,
			code:    strings.TrimSpace(record[index[colCode]]),
			expires: record[index[colExpiration]],
			sent:    record[index[colDateSent]],
			status:  record[index[colStatus]],
		})
	}
	return rows, short, nil
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.ToLower(strings.ReplaceAll(h, "\ufeff", "")))
}

// serviceCodeFor derives the test type from the coupon prefix. The non-proctored
// prefixes are checked first since ACCNONPROC also starts with ACC.
func serviceCodeFor(code resource.Code, fallback resource.ServiceCode) resource.ServiceCode {
	c := code.String()
	switch {
	case strings.HasPrefix(c, "ACCNONPROC"), strings.HasPrefix(c, "NONP"):
		return ServiceNonProctored
	case strings.HasPrefix(c, "ACC"), strings.HasPrefix(c, "PROC"):
		return ServiceProctored
	default:
		return fallback
	}
}

func mapStatus(raw string) resource.Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ASSIGNED", "SENT":
		return resource.StatusAssigned
	case "REDEEMED":
		return resource.StatusRedeemed
	case "EXPIRED":
		return resource.StatusExpired
	default:
		return resource.StatusAvailable
	}
}
