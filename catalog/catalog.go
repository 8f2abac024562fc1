// Package catalog is the fixed list of selectable timezones with their
// display labels, regions and current UTC offsets.
package catalog

import (
	"slices"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/philtim/whenisthat/clock"
)

// Option represents a selectable timezone
type Option struct {
	Zone   string
	Label  string
	Region string
	Offset string
}

// Group is a region heading with its options, in table order
type Group struct {
	Label   string
	Options []Option
}

// Catalog holds the timezone table. Offsets, groups and the display name
// index are computed once on first use; the table never changes afterwards.
type Catalog struct {
	src clockwork.Clock

	once    sync.Once
	options []Option
	groups  []Group
	names   map[string]string
}

// New creates a catalog whose offsets are taken at src's current time.
// A nil src uses the real clock.
func New(src clockwork.Clock) *Catalog {
	if src == nil {
		src = clockwork.NewRealClock()
	}
	return &Catalog{src: src}
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the process-wide catalog.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = New(nil)
	})
	return defaultCatalog
}

// load populates the memo. Zones the host cannot resolve keep an empty offset.
func (c *Catalog) load() {
	c.once.Do(func() {
		grouped := make(map[string][]Option)
		c.options = make([]Option, 0, len(zoneTable))
		c.names = make(map[string]string, len(zoneTable))

		for _, e := range zoneTable {
			opt := Option{
				Zone:   e.zone,
				Label:  e.label,
				Region: e.region,
				Offset: c.offset(e.zone),
			}
			c.options = append(c.options, opt)
			c.names[e.zone] = e.label
			grouped[e.region] = append(grouped[e.region], opt)
		}

		for _, region := range regionOrder {
			if opts, ok := grouped[region]; ok {
				c.groups = append(c.groups, Group{Label: region, Options: opts})
			}
		}
	})
}

func (c *Catalog) offset(zone string) string {
	clk, err := clock.New(zone, zone, c.src)
	if err != nil {
		return ""
	}
	return clk.FormatShortOffset()
}

// Groups returns the options grouped by region, regions in fixed order.
// The result is a copy the caller may modify.
func (c *Catalog) Groups() []Group {
	c.load()
	groups := make([]Group, len(c.groups))
	for i, g := range c.groups {
		groups[i] = Group{Label: g.Label, Options: slices.Clone(g.Options)}
	}
	return groups
}

// All returns a copy of every option in table order
func (c *Catalog) All() []Option {
	c.load()
	return slices.Clone(c.options)
}

// Lookup returns the option for zone, if the catalog has one
func (c *Catalog) Lookup(zone string) (Option, bool) {
	c.load()
	for _, opt := range c.options {
		if opt.Zone == zone {
			return opt, true
		}
	}
	return Option{}, false
}

// DisplayName returns the label of zone. Zones outside the catalog fall
// back to the last path segment with underscores as spaces.
func (c *Catalog) DisplayName(zone string) string {
	c.load()
	if label, ok := c.names[zone]; ok {
		return label
	}
	parts := strings.Split(zone, "/")
	return strings.ReplaceAll(parts[len(parts)-1], "_", " ")
}

// Search returns options whose label, zone, region or offset contains the
// query, case-insensitively. Exact label or zone matches come first, then
// label prefixes, then other matches. An empty query returns everything.
// maxResults <= 0 means no limit.
func (c *Catalog) Search(query string, maxResults int) []Option {
	query = strings.ToLower(strings.TrimSpace(query))
	all := c.All()

	var results []Option
	if query == "" {
		results = all
	} else {
		var exactMatches []Option
		var prefixMatches []Option
		var partialMatches []Option

		for _, opt := range all {
			label := strings.ToLower(opt.Label)
			zone := strings.ToLower(opt.Zone)

			switch {
			case label == query || zone == query:
				exactMatches = append(exactMatches, opt)
			case strings.HasPrefix(label, query):
				prefixMatches = append(prefixMatches, opt)
			case strings.Contains(label, query),
				strings.Contains(zone, query),
				strings.Contains(strings.ToLower(opt.Region), query),
				strings.Contains(strings.ToLower(opt.Offset), query):
				partialMatches = append(partialMatches, opt)
			}
		}

		results = append(exactMatches, prefixMatches...)
		results = append(results, partialMatches...)
	}

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
