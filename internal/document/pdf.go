package document

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"invoicegen/pkg/models"
)

// bankDetails is the income-only payment footer: GBP account details for
// domestic transfers, Swift/BIC for international ones.
var bankDetails = [][2]string{
	{"Name", "Upload For Software Ltd"},
	{"Account number", "15336022"},
	{"Sort code", "23-08-01 (Use when sending money from the UK)"},
	{"IBAN", "GB83 TRWI 2308 0115 3360 22"},
	{"Swift/BIC", "TRWIGB2LXXX (Use when sending money from outside the UK)"},
	{"Bank name", "Wise Payments Limited"},
	{"Bank address", "1st Floor, Worship Square, 65 Clifton Street, London, EC2A 4JE, United Kingdom"},
}

// BuildPDF renders a document into PDF bytes.
func BuildPDF(doc *models.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(13).
		WithTopMargin(13).
		WithRightMargin(13).
		WithBottomMargin(13).
		Build()

	m := maroto.New(cfg)

	// Title
	m.AddRow(12,
		text.NewCol(12, strings.ToUpper(string(doc.Category)),
			props.Text{
				Top:   2,
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
	)
	m.AddRow(3)

	// Company block on the left, document number and date on the right
	m.AddRow(6,
		col.New(8).Add(
			text.New(doc.Company.Name, props.Text{Size: 9, Style: fontstyle.Bold}),
		),
		col.New(4).Add(
			text.New("Document Number: "+doc.Number, props.Text{Size: 9, Align: align.Right, Style: fontstyle.Bold}),
		),
	)
	m.AddRow(6,
		col.New(8).Add(
			text.New(doc.Company.Address, props.Text{Size: 8}),
		),
		col.New(4).Add(
			text.New("Date: "+doc.Date.Format("02/01/2006"), props.Text{Size: 9, Align: align.Right}),
		),
	)
	addCompanyLine(m, "Email", doc.Company.Email)
	addCompanyLine(m, "Website", doc.Company.Website)
	addCompanyLine(m, "Company No", doc.Company.Number)
	addCompanyLine(m, "Phone", doc.Company.Phone)
	addCompanyLine(m, "VAT", doc.Company.VAT)
	m.AddRow(4)

	// Counterparty section varies with money direction
	sectionTitle := "VENDOR INFORMATION"
	entityLabel := "Vendor Name"
	if doc.TransactionType == models.TransactionIncome {
		sectionTitle = "CUSTOMER INFORMATION"
		entityLabel = "Customer Name"
	}
	addSectionHeading(m, sectionTitle)
	addLabelledRow(m, entityLabel, doc.EntityName)
	addLabelledRow(m, "Type", doc.EntityType)
	m.AddRow(3)

	// Transaction details
	addSectionHeading(m, "TRANSACTION DETAILS")
	m.AddRow(8,
		text.NewCol(9, "Description", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(3, "Amount", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center}),
	)
	m.AddRow(8,
		text.NewCol(9, doc.Description, props.Text{Size: 9}),
		text.NewCol(3, doc.CurrencySymbol()+doc.Amount.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
	)
	if doc.Notes != "" {
		addLabelledRow(m, "Notes", doc.Notes)
	}
	m.AddRow(3)

	// Payment information
	addSectionHeading(m, "PAYMENT INFORMATION")
	addLabelledRow(m, "Payment Method", doc.PaymentMethod)
	addLabelledRow(m, "Transaction Type", string(doc.TransactionType))
	addLabelledRow(m, "Payment Date", doc.Date.Format("02/01/2006"))
	m.AddRow(3)

	// Total
	m.AddRow(10,
		col.New(6),
		text.NewCol(3, "Total", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(3, doc.CurrencySymbol()+doc.Amount.StringFixed(2), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)

	if doc.Company.VAT == "" {
		m.AddRow(6,
			text.NewCol(12, "No VAT charged – supplier is not VAT registered.",
				props.Text{Size: 8, Color: &props.Color{Red: 200}}),
		)
	}

	m.AddRow(4, line.NewCol(12))

	if doc.TransactionType == models.TransactionIncome {
		m.AddRow(6,
			text.NewCol(12, "Thank you for your business!", props.Text{Size: 9, Align: align.Center}),
		)
		m.AddRow(3)
		addSectionHeading(m, "BANK PAYMENT DETAILS")
		m.AddRow(10,
			text.NewCol(12,
				"Here are the GBP account details for "+doc.Company.Name+" on Wise. "+
					"If you're sending money from a bank in the UK, use these details for a domestic transfer. "+
					"For international payments, use the Swift/BIC details.",
				props.Text{Size: 8}),
		)
		for _, detail := range bankDetails {
			addLabelledRow(m, detail[0], detail[1])
		}
	} else {
		m.AddRow(6,
			text.NewCol(12, "Thank you for your services!", props.Text{Size: 9, Align: align.Center}),
		)
	}

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return rendered.GetBytes(), nil
}

func addSectionHeading(m core.Maroto, title string) {
	m.AddRow(8,
		text.NewCol(12, title, props.Text{
			Top:   2,
			Size:  10,
			Style: fontstyle.Bold,
		}),
	)
}

// addLabelledRow prints a bold label in the left column and its value in the
// right one.
func addLabelledRow(m core.Maroto, label, value string) {
	m.AddRow(6,
		col.New(3).Add(
			text.New(label+":", props.Text{Size: 8, Style: fontstyle.Bold}),
		),
		col.New(9).Add(
			text.New(value, props.Text{Size: 8}),
		),
	)
}

// addCompanyLine adds an optional line to the company identity block,
// skipping empty fields.
func addCompanyLine(m core.Maroto, label, value string) {
	if value == "" {
		return
	}
	m.AddRow(5,
		col.New(12).Add(
			text.New(label+": "+value, props.Text{Size: 8}),
		),
	)
}
