package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fashionstore/models"
)

// SalesCSV writes the sales report in the back-office CSV layout.
func SalesCSV(w io.Writer, sales []models.Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Data", "Hora", "Cliente", "Produto", "Quantidade", "Valor Unitário", "Total", "Pagamento"}); err != nil {
		return err
	}
	for _, s := range sales {
		record := []string{
			s.Date.Format("02/01/2006"),
			s.Time,
			s.CustomerName,
			s.ProductName,
			strconv.Itoa(s.Quantity),
			"R$ " + s.UnitPrice.StringFixed(2),
			"R$ " + s.Total.StringFixed(2),
			strings.ToUpper(s.PaymentMethod),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DebtorsCSV writes the debtor roster with each customer's computed debt.
func DebtorsCSV(w io.Writer, debtors []Debtor) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Nome", "Telefone", "E-mail", "Dívida Total", "Data do Cadastro"}); err != nil {
		return err
	}
	for _, d := range debtors {
		record := []string{
			d.Name,
			d.Phone,
			d.Email,
			"R$ " + d.Debt.StringFixed(2),
			d.CreatedAt.Format("02/01/2006"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Receipt renders one sale as a printable text receipt.
func Receipt(w io.Writer, sale models.Sale) error {
	lines := []string{
		"FASHION STORE",
		"RECIBO DE VENDA",
		"",
		"Data: " + sale.Date.Format("02/01/2006"),
		"Hora: " + sale.Time,
		"Recibo #" + sale.ID,
		"",
		"DADOS DO CLIENTE:",
		"Nome: " + sale.CustomerName,
		"",
		"DADOS DO PRODUTO:",
		"Produto: " + sale.ProductName,
		"Quantidade: " + strconv.Itoa(sale.Quantity),
		"Valor unitário: R$ " + sale.UnitPrice.StringFixed(2),
		"",
		"PAGAMENTO:",
		"Forma de pagamento: " + strings.ToUpper(sale.PaymentMethod),
	}
	if sale.Installments > 1 {
		lines = append(lines, fmt.Sprintf("Parcelado em: %dx", sale.Installments))
	}
	lines = append(lines, "", "TOTAL: R$ "+sale.Total.StringFixed(2))

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
