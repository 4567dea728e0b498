package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Row una fila del export con encabezados normalizados (trim + minúscula) y su número
// de línea en el archivo (el encabezado es la línea 1).
type Row struct {
	Line   int
	Values map[string]string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile elige el lector por extensión: .xlsx usa la primera hoja, cualquier otra es CSV.
func ReadFile(name string, r io.Reader) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return ReadXLSX(r)
	}
	return ReadCSV(r)
}

// ReadCSV lee un export CSV. Quita el BOM UTF-8 y, si el contenido no es UTF-8 válido,
// lo decodifica como Windows-1252.
func ReadCSV(r io.Reader) ([]Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("csv: leer archivo: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	// un campo entre comillas puede ocupar varias líneas: se guarda la línea donde empieza
	var records [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: parsear: %w", err)
		}
		line, _ := cr.FieldPos(0)
		records = append(records, rec)
		lines = append(lines, line)
	}
	return toRows(records, lines)
}

// ReadXLSX lee la primera hoja de un libro .xlsx.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: abrir libro: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx: el libro no tiene hojas")
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx: leer hoja %q: %w", sheet, err)
	}
	lines := make([]int, len(records))
	for i := range lines {
		lines[i] = i + 1
	}
	return toRows(records, lines)
}

// toRows arma las filas con encabezado; lines[i] es la línea del archivo de records[i].
func toRows(records [][]string, lines []int) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("el archivo no tiene encabezado")
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if isBlank(rec) {
			continue
		}
		values := make(map[string]string, len(headers))
		for j, h := range headers {
			if h == "" {
				continue
			}
			if j < len(rec) {
				values[h] = rec[j]
			} else {
				values[h] = ""
			}
		}
		rows = append(rows, Row{Line: lines[i], Values: values})
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
