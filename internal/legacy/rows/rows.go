// Package rows resolve o polimorfismo das linhas dos dumps legados (texto SQL
// ou objeto JSON) uma única vez, na borda de ingestão, produzindo registros
// tipados para o motor de reconciliação.
package rows

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/rmendes/labstock/internal/legacy/sqlparse"
)

// RawRow linha crua de um dump: fragmento SQL (Text) ou objeto JSON (Obj).
// União discriminada resolvida no UnmarshalJSON.
type RawRow struct {
	Text string
	Obj  json.RawMessage
}

// UnmarshalJSON aceita tanto uma string JSON (fragmento SQL) quanto um objeto.
func (r *RawRow) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(data, &r.Text)
	}
	r.Obj = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON reconstitui a forma original da linha.
func (r RawRow) MarshalJSON() ([]byte, error) {
	if r.Obj != nil {
		return r.Obj, nil
	}
	return json.Marshal(r.Text)
}

// FromText embala um fragmento SQL como linha crua.
func FromText(s string) RawRow { return RawRow{Text: s} }

// FromObject embala um objeto legado como linha crua (usado pelo adaptador
// relacional para reaproveitar o mesmo caminho de ingestão).
func FromObject(v any) RawRow {
	b, err := json.Marshal(v)
	if err != nil {
		return RawRow{}
	}
	return RawRow{Obj: b}
}

// Flex aceita string, número ou null no JSON legado (ids e códigos
// chegam ora como texto, ora como número).
type Flex string

func (f *Flex) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if string(trimmed) == "null" {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Flex(s)
		return nil
	}
	*f = Flex(trimmed)
	return nil
}

// ProductObject forma JSON legada de uma linha de produto.
type ProductObject struct {
	Cdsap       Flex `json:"cdsap"`
	NomeProduto Flex `json:"nome_produto"`
	Unidade     Flex `json:"unidade"`
}

// LotObject forma JSON legada de uma linha de lote.
type LotObject struct {
	IDLote     Flex `json:"id_lote"`
	Cdsap      Flex `json:"cdsap"`
	Lote       Flex `json:"lote"`
	Fabricante Flex `json:"fabricante"`
	Validade   Flex `json:"validade"`
}

// MovementObject forma JSON legada de uma linha de movimentação.
type MovementObject struct {
	IDMov      Flex `json:"id_mov,omitempty"`
	IDLote     Flex `json:"id_lote"`
	TipoMov    Flex `json:"tipo_mov"`
	DataMov    Flex `json:"data_mov"`
	Quantidade Flex `json:"quantidade"`
}

// ProductRow linha de produto normalizada.
type ProductRow struct {
	SAPCode string
	Name    string
	Unit    string
}

// LotRow linha de lote normalizada. SAPCode é uma FK fraca para ProductRow.
type LotRow struct {
	LegacyLotID  string
	SAPCode      string
	LotCode      string
	Manufacturer string
	ExpiryDate   string // vazio quando NULL no dump
}

// MovementRow linha de movimentação normalizada. LegacyLotID é uma FK fraca
// para LotRow; LegacyMovementID é opcional (dumps de 4 colunas não o têm).
type MovementRow struct {
	LegacyMovementID string
	LegacyLotID      string
	TypeText         string
	Date             string
	Quantity         decimal.Decimal
}

// NormalizeProduct converte uma linha crua em ProductRow.
// SQL legado: cdsap, nome_produto, unidade. ok=false descarta a linha.
func NormalizeProduct(r RawRow) (ProductRow, bool) {
	if r.Text != "" {
		vals := sqlparse.ParseInsertValues(r.Text)
		if len(vals) < 3 {
			return ProductRow{}, false
		}
		return ProductRow{
			SAPCode: vals[0].Text(),
			Name:    vals[1].Text(),
			Unit:    vals[2].Text(),
		}, true
	}
	if r.Obj == nil {
		return ProductRow{}, false
	}
	var obj ProductObject
	if err := json.Unmarshal(r.Obj, &obj); err != nil {
		return ProductRow{}, false
	}
	return ProductRow{
		SAPCode: string(obj.Cdsap),
		Name:    string(obj.NomeProduto),
		Unit:    string(obj.Unidade),
	}, true
}

// NormalizeLot converte uma linha crua em LotRow.
// SQL legado: id_lote, cdsap, lote, fabricante, validade (5 colunas).
func NormalizeLot(r RawRow) (LotRow, bool) {
	if r.Text != "" {
		vals := sqlparse.ParseInsertValues(r.Text)
		if len(vals) < 5 {
			return LotRow{}, false
		}
		return LotRow{
			LegacyLotID:  vals[0].Text(),
			SAPCode:      vals[1].Text(),
			LotCode:      vals[2].Text(),
			Manufacturer: vals[3].Text(),
			ExpiryDate:   vals[4].Text(),
		}, true
	}
	if r.Obj == nil {
		return LotRow{}, false
	}
	var obj LotObject
	if err := json.Unmarshal(r.Obj, &obj); err != nil {
		return LotRow{}, false
	}
	return LotRow{
		LegacyLotID:  string(obj.IDLote),
		SAPCode:      string(obj.Cdsap),
		LotCode:      string(obj.Lote),
		Manufacturer: string(obj.Fabricante),
		ExpiryDate:   string(obj.Validade),
	}, true
}

// NormalizeMovement converte uma linha crua em MovementRow.
// SQL legado: 4 colunas (id_lote, tipo, data, qtd) ou 5 colunas
// (id_mov, id_lote, tipo, data, qtd) — desambiguação puramente por aridade.
// Quantidade não numérica vira zero (política explícita: a linha entra no
// ledger, o saldo não é alterado).
func NormalizeMovement(r RawRow) (MovementRow, bool) {
	if r.Text != "" {
		vals := sqlparse.ParseInsertValues(r.Text)
		switch len(vals) {
		case 4:
			return MovementRow{
				LegacyLotID: vals[0].Text(),
				TypeText:    vals[1].Text(),
				Date:        vals[2].Text(),
				Quantity:    scalarQuantity(vals[3]),
			}, true
		case 5:
			return MovementRow{
				LegacyMovementID: vals[0].Text(),
				LegacyLotID:      vals[1].Text(),
				TypeText:         vals[2].Text(),
				Date:             vals[3].Text(),
				Quantity:         scalarQuantity(vals[4]),
			}, true
		}
		return MovementRow{}, false
	}
	if r.Obj == nil {
		return MovementRow{}, false
	}
	var obj MovementObject
	if err := json.Unmarshal(r.Obj, &obj); err != nil {
		return MovementRow{}, false
	}
	return MovementRow{
		LegacyMovementID: string(obj.IDMov),
		LegacyLotID:      string(obj.IDLote),
		TypeText:         string(obj.TipoMov),
		Date:             string(obj.DataMov),
		Quantity:         parseQuantity(string(obj.Quantidade)),
	}, true
}

func scalarQuantity(s sqlparse.Scalar) decimal.Decimal {
	if d, ok := s.Decimal(); ok {
		return d
	}
	return parseQuantity(s.Text())
}

func parseQuantity(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
