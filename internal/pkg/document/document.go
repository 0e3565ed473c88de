package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"expo-gateway/internal/pkg/errs"

	"github.com/jung-kurt/gofpdf"
)

const (
	TitleRegistration = "Potvrda prijave – FON Expo 2024"
	TitleUpdate       = "Ažurirana potvrda – FON Expo 2024"
)

// Data is everything that goes on a downloadable confirmation: the token and
// email identify the registration, the rest summarizes what was committed.
type Data struct {
	Token         string
	Email         string
	Attendees     int
	DayIDs        []int64
	OriginalPrice float64
	FinalPrice    float64
	Title         string
	IssuedAt      time.Time
}

func FileName(token string) string {
	return fmt.Sprintf("Prijava_%s.pdf", token)
}

// Render produces the confirmation PDF. Layout follows the issued paper
// confirmations: centered title, then one line per field.
func Render(d Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 16)
	pdf.SetY(14)
	pdf.CellFormat(0, 10, tr(d.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetY(32)
	pdf.SetX(20)
	line := func(s string) {
		pdf.CellFormat(0, 8, tr(s), "", 1, "L", false, 0, "")
		pdf.SetX(20)
	}

	line(fmt.Sprintf("Token: %s", d.Token))
	line(fmt.Sprintf("Email: %s", d.Email))
	line(fmt.Sprintf("Broj osoba: %d", d.Attendees))
	line(fmt.Sprintf("Dani (ID): %s", joinIDs(d.DayIDs)))
	line(fmt.Sprintf("Originalna cena: %.2f RSD", d.OriginalPrice))
	line(fmt.Sprintf("Finalna cena: %.2f RSD", d.FinalPrice))
	line(fmt.Sprintf("Datum izdavanja: %s", d.IssuedAt.Format("2.1.2006. 15:04:05")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "rendering confirmation document")
	}
	return buf.Bytes(), nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
