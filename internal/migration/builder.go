package migration

import (
	"fmt"
	"time"

	"github.com/nao1215/seobooster/internal/model"
)

// Defaults used by NewBuilder.
const (
	DefaultContentID        = "dcx"
	DefaultLinkType         = "#/definitions/textLinkWithRelativeUrlMandatory"
	DefaultPlaceholderTitle = "Default Title"
)

// idLayout is the timestamp prefix of a document ID.
const idLayout = "200601021504"

// Builder turns pages and booster lists into a migration document.
type Builder struct {
	contentID   string
	linkType    string
	placeholder string
	now         func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithContentID sets the document contentId.
func WithContentID(id string) Option {
	return func(b *Builder) {
		if id != "" {
			b.contentID = id
		}
	}
}

// WithLinkType sets the @metadata type written on every link.
func WithLinkType(t string) Option {
	return func(b *Builder) {
		if t != "" {
			b.linkType = t
		}
	}
}

// WithPlaceholderTitle sets the title used for a booster list without one.
func WithPlaceholderTitle(title string) Option {
	return func(b *Builder) {
		if title != "" {
			b.placeholder = title
		}
	}
}

// WithClock sets the clock used for document IDs.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		contentID:   DefaultContentID,
		linkType:    DefaultLinkType,
		placeholder: DefaultPlaceholderTitle,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GenerateID returns "<YYYYMMDDHHMM>-Replace_seoBoosters-<locale>".
func GenerateID(t time.Time, locale string) string {
	return t.Format(idLayout) + "-Replace_seoBoosters-" + locale
}

// TitleOf returns the title of a booster list: the first row's title, or
// the placeholder when the list is empty or that title is blank.
func (b *Builder) TitleOf(list model.BoosterList) string {
	if t := list.FirstTitle(); t != "" {
		return t
	}
	return b.placeholder
}

// Links converts a booster list into CMS links, in list order.
func (b *Builder) Links(list model.BoosterList) []model.Link {
	links := make([]model.Link, 0, list.Len())
	for _, row := range list.Rows {
		links = append(links, model.Link{
			Label:    row.Label,
			URL:      row.URL,
			Metadata: model.LinkMetadata{Type: b.linkType},
		})
	}
	return links
}

// LinksFor returns links without those pointing at pageURL.
// The result is never nil so that it marshals as [].
func LinksFor(links []model.Link, pageURL string) []model.Link {
	out := make([]model.Link, 0, len(links))
	for _, l := range links {
		if l.URL == pageURL {
			continue
		}
		out = append(out, l)
	}
	return out
}

// titlePath and linksPath address the fields of booster slot i.
func titlePath(i int) string {
	return fmt.Sprintf("props.seoBoosters.%d.title", i)
}

func linksPath(i int) string {
	return fmt.Sprintf("props.seoBoosters.%d.links", i)
}

// Block returns the migration block of a single page.
func Block(pageURL string, titles [model.BoosterCount]string, links [model.BoosterCount][]model.Link) model.Migration {
	ops := make([]model.Operation, 0, 2*model.BoosterCount)
	for i := range model.BoosterCount {
		ops = append(ops,
			model.Operation{Op: model.OpReplace, Path: titlePath(i), Value: titles[i]},
			model.Operation{Op: model.OpReplace, Path: linksPath(i), Value: LinksFor(links[i], pageURL)},
		)
	}

	return model.Migration{
		Iterate: model.Iterate{
			Filters: []model.Filter{
				model.HasFilter(model.FilterPages),
				model.MatchFilter(model.FilterPropertyURL, pageURL),
				model.HasFilter(model.FilterComponents),
				model.HasFilter(model.FilterSEOBoosters),
			},
			Migrate: ops,
		},
	}
}

// Titles returns the titles of both booster lists.
func (b *Builder) Titles(boosters [model.BoosterCount]model.BoosterList) [model.BoosterCount]string {
	var titles [model.BoosterCount]string
	for i, list := range boosters {
		titles[i] = b.TitleOf(list)
	}
	return titles
}

// Build returns the migration document for locale with one block per page,
// in page order. Page and booster URLs are expected to be normalized.
func (b *Builder) Build(locale string, pages []model.Page, boosters [model.BoosterCount]model.BoosterList) *model.Document {
	titles := b.Titles(boosters)

	var links [model.BoosterCount][]model.Link
	for i, list := range boosters {
		links[i] = b.Links(list)
	}

	migrations := make([]model.Migration, 0, len(pages))
	for _, p := range pages {
		migrations = append(migrations, Block(p.URL, titles, links))
	}

	return &model.Document{
		ID:         GenerateID(b.now(), locale),
		Locales:    []string{locale},
		Migrations: migrations,
		ContentID:  b.contentID,
	}
}
