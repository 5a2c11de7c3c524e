// Package ingestion extrai texto bruto dos arquivos enviados. PDF passa pelo
// parser do eino; TXT é lido direto. Outros formatos devolvem erro descritivo.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document/parser"
)

var ErrUnsupportedFormat = fmt.Errorf("formato não suportado: envie PDF ou TXT")

// ExtractText devolve o texto integral do arquivo enviado.
func ExtractText(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("abrir arquivo: %w", err)
	}
	defer src.Close()

	name := strings.ToLower(fileHeader.Filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return extractPDF(ctx, src, fileHeader.Filename)
	case strings.HasSuffix(name, ".txt"):
		data, err := io.ReadAll(src)
		if err != nil {
			return "", fmt.Errorf("ler arquivo: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractPDF(ctx context.Context, src io.Reader, uri string) (string, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return "", fmt.Errorf("criar parser pdf: %w", err)
	}
	docs, err := p.Parse(ctx, src, parser.WithURI(uri))
	if err != nil {
		return "", fmt.Errorf("parse pdf failed: %w", err)
	}
	var parts []string
	for _, doc := range docs {
		if t := strings.TrimSpace(doc.Content); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}
