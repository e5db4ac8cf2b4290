package registry_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiclex/crux-invoice/internal/registry"
)

func TestDefaultRows(t *testing.T) {
	rows := registry.DefaultRows()
	require.Len(t, rows, 5)

	assert.Equal(t, 1, rows[0].Seq)
	assert.Equal(t, "DEGREE", rows[0].Particulars)
	assert.Equal(t, "Commercial Training And Coaching Services", rows[0].Description)
	assert.Equal(t, "999293", rows[0].SACCode)
	assert.Equal(t, "1", rows[0].Quantity)
	assert.Equal(t, "100", rows[0].Rate)

	assert.Equal(t, "HAND BOOKS", rows[4].Particulars)
	assert.Equal(t, "5", rows[4].Quantity)
	assert.Equal(t, "104", rows[4].Rate)
}

func TestClientRows_OverridesApply(t *testing.T) {
	c := registry.Client{
		Name: "ACME SKILLING PVT LTD",
		Defaults: map[string]registry.ItemDefault{
			"EXAM FEE":   {Quantity: "120", Rate: "350"},
			"HAND BOOKS": {Quantity: "", Rate: ""}, // explicit blanks stay blank
		},
	}

	rows := c.Rows()
	require.Len(t, rows, 5)

	assert.Equal(t, "120", rows[3].Quantity)
	assert.Equal(t, "350", rows[3].Rate)
	assert.Equal(t, "", rows[4].Quantity)
	assert.Equal(t, "", rows[4].Rate)
	// Untouched categories keep the seed values
	assert.Equal(t, "1", rows[0].Quantity)
}

func TestDirectory_LookupIsCaseInsensitive(t *testing.T) {
	dir := registry.NewDirectory()
	dir.Put(registry.Client{Name: "ACME Skilling Pvt Ltd", GSTIN: "27AABCU9603R1ZM"})

	c, ok := dir.Lookup("acme skilling pvt ltd")
	require.True(t, ok)
	assert.Equal(t, "27AABCU9603R1ZM", c.GSTIN)

	_, ok = dir.Lookup("UNKNOWN LTD")
	assert.False(t, ok)
}

func TestDirectory_PutDropsUnnamed(t *testing.T) {
	dir := registry.NewDirectory()
	dir.Put(registry.Client{Name: "   "})
	assert.Zero(t, dir.Len())
}

func TestDirectory_NamesSorted(t *testing.T) {
	dir := registry.NewDirectory()
	dir.Put(registry.Client{Name: "ZENITH EDUCATION"})
	dir.Put(registry.Client{Name: "ACME SKILLING"})

	assert.Equal(t, []string{"ACME SKILLING", "ZENITH EDUCATION"}, dir.Names())
}

func TestClientParty(t *testing.T) {
	c := registry.Client{
		Name:    "ACME SKILLING",
		GSTIN:   "27AABCU9603R1ZM",
		Address: "Mumbai",
		Email:   "billing@acme.example",
	}

	p := c.Party()
	assert.Equal(t, "ACME SKILLING", p.Name)
	assert.Equal(t, "27AABCU9603R1ZM", p.GSTIN)
	assert.Equal(t, "Mumbai", p.Address)
	assert.Equal(t, "billing@acme.example", p.Email)
}

func TestReadCSV(t *testing.T) {
	data := `name,gstin,pan,address,email,purchase_order,exam_fee_qty,exam_fee_rate
ACME SKILLING PVT LTD,27aabcu9603r1zm,AABCU9603R,"Plot 12, Mumbai",billing@acme.example,PO-881,120,350
ZENITH EDUCATION,,,,,,
,36AADCA1234F1Z5,,,,,
`

	dir, err := registry.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Len(), "the unnamed row is skipped")

	c, ok := dir.Lookup("ACME SKILLING PVT LTD")
	require.True(t, ok)
	assert.Equal(t, "27AABCU9603R1ZM", c.GSTIN, "gstin is upper-cased")
	assert.Equal(t, "Plot 12, Mumbai", c.Address)
	assert.Equal(t, "PO-881", c.PurchaseOrder)
	require.Contains(t, c.Defaults, "EXAM FEE")
	assert.Equal(t, registry.ItemDefault{Quantity: "120", Rate: "350"}, c.Defaults["EXAM FEE"])

	z, ok := dir.Lookup("ZENITH EDUCATION")
	require.True(t, ok)
	assert.Empty(t, z.Defaults)
}

func TestReadCSV_ColumnOrderDoesNotMatter(t *testing.T) {
	data := "gstin,name\n36AADCA1234F1Z5,LOCAL TRAINING LTD\n"

	dir, err := registry.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)

	c, ok := dir.Lookup("LOCAL TRAINING LTD")
	require.True(t, ok)
	assert.Equal(t, "36AADCA1234F1Z5", c.GSTIN)
}

func TestReadCSV_MissingNameColumn(t *testing.T) {
	_, err := registry.ReadCSV(strings.NewReader("gstin,pan\nX,Y\n"))
	require.Error(t, err)

	var loadErr *registry.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 1, loadErr.Line)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := registry.ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("name,gstin\nACME SKILLING,27AABCU9603R1ZM\n"), 0o600))

	dir, err := registry.LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, dir.Len())
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := registry.LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var loadErr *registry.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "cannot open")
}
