// Package export renders transaction listings to CSV and XLSX for offline use.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/budget_query_app/internal/core/domain"
)

var columns = []string{
	"id",
	"date",
	"account",
	"payee",
	"category",
	"memo",
	"inflow",
	"outflow",
	"cleared",
	"approved",
	"transfer_transaction_id",
}

// WriteCSV writes transactions as CSV with a header row. Amounts are fixed to
// two decimal places.
func WriteCSV(w io.Writer, txns []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, txn := range txns {
		if err := cw.Write(csvRow(txn)); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", txn.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(txn domain.Transaction) []string {
	return []string{
		txn.ID,
		txn.Date,
		txn.AccountName,
		txn.PayeeName,
		txn.CategoryName,
		txn.Memo,
		txn.Inflow.StringFixed(2),
		txn.Outflow.StringFixed(2),
		string(txn.Cleared),
		strconv.FormatBool(txn.Approved),
		txn.TransferTransactionID,
	}
}

// WriteXLSX writes transactions to a single-sheet spreadsheet. Amounts become
// native numbers so spreadsheet formulas work on them.
func WriteXLSX(w io.Writer, txns []domain.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("writing header cell %s: %w", cell, err)
		}
	}

	for rowIdx, txn := range txns {
		values := []interface{}{
			txn.ID,
			txn.Date,
			txn.AccountName,
			txn.PayeeName,
			txn.CategoryName,
			txn.Memo,
			txn.Inflow.InexactFloat64(),
			txn.Outflow.InexactFloat64(),
			string(txn.Cleared),
			txn.Approved,
			txn.TransferTransactionID,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
