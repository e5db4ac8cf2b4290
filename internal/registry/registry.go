// Package registry holds the client directory: the billable parties an
// invoice can be addressed to, each with optional per-category default
// quantities and rates. Lookups are by exact name; a client that is not
// found is reported through the boolean, never an error, because an
// unknown client simply means no jurisdiction and no prefilled items.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/aiclex/crux-invoice/internal/model"
)

// ServiceDescription is printed in the description column of every
// catalog line item.
const ServiceDescription = "Commercial Training And Coaching Services"

// ServiceSAC is the services accounting code for training services
const ServiceSAC = "999293"

// CatalogEntry is one fixed billing category with its seed quantity and
// rate. The seed values populate a fresh invoice when the client record
// carries no override for the category.
type CatalogEntry struct {
	Particulars string
	Quantity    string
	Rate        string
}

// Catalog returns the billing categories in print order
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{Particulars: "DEGREE", Quantity: "1", Rate: "100"},
		{Particulars: "NON DEGREE", Quantity: "2", Rate: "101"},
		{Particulars: "NO OF CANDIDATES", Quantity: "3", Rate: "102"},
		{Particulars: "EXAM FEE", Quantity: "4", Rate: "103"},
		{Particulars: "HAND BOOKS", Quantity: "5", Rate: "104"},
	}
}

// ItemDefault is a per-client override for one catalog category. Either
// field may be blank, which keeps the cell empty on the invoice rather
// than falling back to the seed value.
type ItemDefault struct {
	Quantity string `json:"quantity"`
	Rate     string `json:"rate"`
}

// Client is one directory record
type Client struct {
	Name          string `json:"name"`
	GSTIN         string `json:"gstin,omitempty"`
	PAN           string `json:"pan,omitempty"`
	Address       string `json:"address,omitempty"`
	Email         string `json:"email,omitempty"`
	PurchaseOrder string `json:"purchase_order,omitempty"`

	// Defaults maps a catalog particulars label to that client's
	// override. Categories without an entry use the catalog seed.
	Defaults map[string]ItemDefault `json:"defaults,omitempty"`
}

// Party converts the record into the invoice party block
func (c Client) Party() model.Party {
	return model.Party{
		Name:    c.Name,
		GSTIN:   c.GSTIN,
		PAN:     c.PAN,
		Address: c.Address,
		Email:   c.Email,
	}
}

// Rows builds the client's prefilled line items: the full catalog in
// order, with the client's overrides applied where present.
func (c Client) Rows() []model.RawRow {
	rows := make([]model.RawRow, 0, len(Catalog()))
	for i, entry := range Catalog() {
		qty, rate := entry.Quantity, entry.Rate
		if def, ok := c.Defaults[entry.Particulars]; ok {
			qty, rate = def.Quantity, def.Rate
		}
		rows = append(rows, model.RawRow{
			Seq:         i + 1,
			Particulars: entry.Particulars,
			Description: ServiceDescription,
			SACCode:     ServiceSAC,
			Quantity:    qty,
			Rate:        rate,
		})
	}
	return rows
}

// DefaultRows returns the seed line items with no client overrides
func DefaultRows() []model.RawRow {
	return Client{}.Rows()
}

// Directory is an in-memory client store, safe for concurrent use
type Directory struct {
	mu      sync.RWMutex
	clients map[string]Client
}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{clients: make(map[string]Client)}
}

// Put inserts or replaces a record. Records without a name are dropped.
func (d *Directory) Put(c Client) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return
	}
	c.Name = name

	d.mu.Lock()
	defer d.mu.Unlock()
	d.clients[strings.ToUpper(name)] = c
}

// Lookup finds a record by name, case-insensitively
func (d *Directory) Lookup(name string) (Client, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.clients[strings.ToUpper(strings.TrimSpace(name))]
	return c, ok
}

// Names returns all client names in sorted order
func (d *Directory) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.clients))
	for _, c := range d.clients {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of records
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.clients)
}
