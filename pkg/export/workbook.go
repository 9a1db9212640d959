package export

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/xuri/excelize/v2"

	"github.com/behavelab/parley/ent/transaction"
)

// summarySheet is appended after the entity sheets.
const summarySheet = "summary"

// WriteWorkbook renders the whole session as an XLSX workbook: one sheet per
// entity in Entities order, then a summary sheet with basic statistics over
// participant money, completed trade prices, and investment amounts.
func (e *Exporter) WriteWorkbook(ctx context.Context, w io.Writer, sessionCode string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, entity := range Entities {
		tbl, err := e.table(ctx, sessionCode, entity)
		if err != nil {
			return err
		}
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), tbl.name); err != nil {
				return fmt.Errorf("naming sheet %s: %w", tbl.name, err)
			}
		} else if _, err := f.NewSheet(tbl.name); err != nil {
			return fmt.Errorf("adding sheet %s: %w", tbl.name, err)
		}
		if err := writeSheet(f, tbl); err != nil {
			return err
		}
	}

	if err := e.writeSummary(ctx, f, sessionCode); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, tbl *table) error {
	header := make([]any, len(tbl.header))
	for i, h := range tbl.header {
		header[i] = h
	}
	if err := f.SetSheetRow(tbl.name, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", tbl.name, err)
	}
	for r, row := range tbl.rows {
		vals := make([]any, len(row))
		for i, v := range row {
			vals[i] = v
		}
		cell := "A" + strconv.Itoa(r+2)
		if err := f.SetSheetRow(tbl.name, cell, &vals); err != nil {
			return fmt.Errorf("writing %s row %d: %w", tbl.name, r+1, err)
		}
	}
	return nil
}

// writeSummary computes mean/median/standard deviation for the numeric
// series researchers ask about first. Metrics with no data are listed with a
// zero count so the sheet shape is stable across experiment kinds.
func (e *Exporter) writeSummary(ctx context.Context, f *excelize.File, sessionCode string) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("adding summary sheet: %w", err)
	}

	money, err := e.moneySeries(ctx, sessionCode)
	if err != nil {
		return err
	}
	prices, err := e.tradePriceSeries(ctx, sessionCode)
	if err != nil {
		return err
	}
	amounts, err := e.investmentSeries(ctx, sessionCode)
	if err != nil {
		return err
	}

	header := []any{"metric", "count", "mean", "median", "stdev"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	rows := [][]any{
		summaryRow("participant_money", money),
		summaryRow("completed_trade_price", prices),
		summaryRow("investment_amount", amounts),
	}
	for i, row := range rows {
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func summaryRow(metric string, values []float64) []any {
	if len(values) == 0 {
		return []any{metric, 0, "", "", ""}
	}
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdev, _ := stats.StandardDeviation(values)
	mean, _ = stats.Round(mean, 2)
	median, _ = stats.Round(median, 2)
	stdev, _ = stats.Round(stdev, 2)
	return []any{metric, len(values), mean, median, stdev}
}

func (e *Exporter) moneySeries(ctx context.Context, sessionCode string) ([]float64, error) {
	participants, err := e.store.Participants.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	series := make([]float64, 0, len(participants))
	for _, p := range participants {
		series = append(series, float64(p.Money))
	}
	return series, nil
}

func (e *Exporter) tradePriceSeries(ctx context.Context, sessionCode string) ([]float64, error) {
	trades, err := e.store.Trades.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	var series []float64
	for _, t := range trades {
		if t.Status == transaction.StatusCompleted {
			series = append(series, float64(t.PricePerUnit))
		}
	}
	return series, nil
}

func (e *Exporter) investmentSeries(ctx context.Context, sessionCode string) ([]float64, error) {
	investments, err := e.store.Investments.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	series := make([]float64, 0, len(investments))
	for _, inv := range investments {
		series = append(series, inv.Price)
	}
	return series, nil
}
