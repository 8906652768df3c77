package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"espetinho/internal/domain"
	"espetinho/internal/usecase"
)

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.createOrder(w, r)
		return
	}

	ctx := r.Context()
	customers, err := s.catalog.ListCustomers(ctx, domain.ByNameAsc)
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}
	products, err := s.catalog.ListProducts(ctx, domain.ByNameAsc)
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}
	drinks, err := s.catalog.ListDrinks(ctx, domain.ByNameAsc)
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}
	orders, err := s.orders.ListWithTotals(ctx)
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "pedidos.html", map[string]any{
		"ShowMenu":  true,
		"Customers": customers,
		"Products":  products,
		"Drinks":    drinks,
		"Orders":    orders,
	})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", http.StatusBadRequest)
		return
	}
	rawCustomer := strings.TrimSpace(r.PostFormValue("cliente_id"))
	if rawCustomer == "" {
		setFlash(w, "danger", "Informe o cliente.")
		http.Redirect(w, r, "/pedidos", http.StatusFound)
		return
	}
	customerID, err := strconv.ParseUint(rawCustomer, 10, 64)
	if err != nil {
		setFlash(w, "danger", "Dados inválidos.")
		http.Redirect(w, r, "/pedidos", http.StatusFound)
		return
	}

	productLines := decodeLines(r.PostForm["item_produto_id"], r.PostForm["item_produto_qtd"])
	drinkLines := decodeLines(r.PostForm["item_bebida_id"], r.PostForm["item_bebida_qtd"])

	_, err = s.orders.Create(r.Context(), uint(customerID), productLines, drinkLines)
	switch {
	case errors.Is(err, domain.ErrValidation):
		setFlash(w, "danger", "Informe o cliente.")
	case err != nil:
		log.Error().Err(err).Msg("create order")
		setFlash(w, "danger", "Erro ao salvar pedido.")
	default:
		setFlash(w, "success", "Pedido salvo.")
	}
	http.Redirect(w, r, "/pedidos", http.StatusFound)
}

// decodeLines pairs up the parallel id/qty form fields. Blank or
// unparseable entries are dropped here; dangling catalog references and
// non-positive quantities are dropped later by the usecase. Neither is
// an error.
func decodeLines(ids, qtys []string) []usecase.OrderLine {
	lines := make([]usecase.OrderLine, 0, len(ids))
	for i, rawID := range ids {
		id := strings.TrimSpace(rawID)
		var rawQty string
		if i < len(qtys) {
			rawQty = strings.TrimSpace(qtys[i])
		}
		if id == "" || rawQty == "" {
			continue
		}
		refID, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(rawQty)
		if err != nil {
			continue
		}
		lines = append(lines, usecase.OrderLine{RefID: uint(refID), Qty: qty})
	}
	return lines
}

// handleOrdersExport streams the orders listing as a spreadsheet, one
// row per item plus a total row per order.
func (s *Server) handleOrdersExport(w http.ResponseWriter, r *http.Request) {
	views, err := s.orders.ListWithTotals(r.Context())
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Pedido", "Cliente", "Tipo", "Item", "Tamanho", "Qtd", "Preço unit.", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	writeItem := func(v domain.OrderView, it domain.OrderItem) {
		size := ""
		if it.Size != nil {
			size = *it.Size
		}
		values := []any{v.ID, v.CustomerName, string(it.Kind), it.Name, size, it.Qty, it.UnitPrice, it.Total}
		for i, val := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, val)
		}
		row++
	}
	for _, v := range views {
		for _, it := range v.Products {
			writeItem(v, it)
		}
		for _, it := range v.Drinks {
			writeItem(v, it)
		}
		totalCells := []any{v.ID, v.CustomerName, "", "Total do pedido", "", "", "", v.Total}
		for i, val := range totalCells {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, val)
		}
		row++
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=pedidos_%s.xlsx", time.Now().Format("2006-01-02")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("xlsx export")
	}
}
