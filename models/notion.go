package models

// Wire types for the upstream Notion API (version 2022-06-28). A page
// property is a tagged union keyed by its "type" field; only the
// variants this system reads or writes are modeled. Extraction helpers
// tolerate missing properties and type mismatches by returning zero
// values, never errors.

// NotionQueryRequest is the body of a database query call.
type NotionQueryRequest struct {
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
	Sorts       []NotionSort  `json:"sorts,omitempty"`
	Filter      *NotionFilter `json:"filter,omitempty"`
}

// NotionSort orders query results by a single property.
type NotionSort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// NotionFilter restricts query results. Only the checkbox variant is
// used (enabled-category filtering).
type NotionFilter struct {
	Property string                `json:"property"`
	Checkbox *NotionCheckboxFilter `json:"checkbox,omitempty"`
}

type NotionCheckboxFilter struct {
	Equals bool `json:"equals"`
}

// NotionQueryResponse is one page of query results.
type NotionQueryResponse struct {
	Results    []NotionPage `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor string       `json:"next_cursor"`
}

// NotionPage is a single record: an id plus a property bag keyed by
// the property's display name.
type NotionPage struct {
	ID         string                    `json:"id"`
	Properties map[string]NotionProperty `json:"properties"`
}

// NotionDatabase carries the database-level metadata this system
// reads; only the icon is consumed (site favicon).
type NotionDatabase struct {
	ID   string      `json:"id"`
	Icon *NotionIcon `json:"icon"`
}

// NotionIcon is an emoji, hosted file or external URL.
type NotionIcon struct {
	Type     string         `json:"type"`
	Emoji    string         `json:"emoji,omitempty"`
	File     *NotionFileRef `json:"file,omitempty"`
	External *NotionFileRef `json:"external,omitempty"`
}

type NotionFileRef struct {
	URL string `json:"url"`
}

// NotionProperty is the tagged property union: title, rich_text,
// select, multi_select, checkbox, files, url, number, created_time.
type NotionProperty struct {
	Type        string              `json:"type,omitempty"`
	Title       []NotionRichText    `json:"title,omitempty"`
	RichText    []NotionRichText    `json:"rich_text,omitempty"`
	Select      *NotionSelectValue  `json:"select,omitempty"`
	MultiSelect []NotionSelectValue `json:"multi_select,omitempty"`
	Checkbox    *bool               `json:"checkbox,omitempty"`
	Files       []NotionFile        `json:"files,omitempty"`
	URL         string              `json:"url,omitempty"`
	Number      *float64            `json:"number,omitempty"`
	CreatedTime string              `json:"created_time,omitempty"`
}

// NotionRichText carries the rendered text of a title or rich_text
// fragment. PlainText is set on reads, Text on writes.
type NotionRichText struct {
	PlainText string          `json:"plain_text,omitempty"`
	Text      *NotionTextSpan `json:"text,omitempty"`
}

type NotionTextSpan struct {
	Content string `json:"content"`
}

type NotionSelectValue struct {
	Name string `json:"name"`
}

// NotionFile is one entry of a files property; hosted uploads use the
// "file" variant, linked files the "external" variant.
type NotionFile struct {
	Type     string         `json:"type"`
	File     *NotionFileRef `json:"file,omitempty"`
	External *NotionFileRef `json:"external,omitempty"`
}

// TitleText returns the first title fragment of the named property.
func (p NotionPage) TitleText(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.Title) == 0 {
		return ""
	}
	return prop.Title[0].PlainText
}

// RichTextValue returns the first rich_text fragment of the named
// property.
func (p NotionPage) RichTextValue(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.RichText) == 0 {
		return ""
	}
	return prop.RichText[0].PlainText
}

// SelectName returns the selected option name, or fallback when the
// property is absent or unset.
func (p NotionPage) SelectName(name, fallback string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Select == nil || prop.Select.Name == "" {
		return fallback
	}
	return prop.Select.Name
}

// MultiSelectNames returns the option names of a multi_select
// property in upstream order.
func (p NotionPage) MultiSelectNames(name string) []string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.MultiSelect) == 0 {
		return []string{}
	}
	names := make([]string, 0, len(prop.MultiSelect))
	for _, option := range prop.MultiSelect {
		names = append(names, option.Name)
	}
	return names
}

// CheckboxValue returns the checkbox state, false when absent.
func (p NotionPage) CheckboxValue(name string) bool {
	prop, ok := p.Properties[name]
	if !ok || prop.Checkbox == nil {
		return false
	}
	return *prop.Checkbox
}

// FileURL returns the URL of the first file in a files property,
// whether hosted or external.
func (p NotionPage) FileURL(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.Files) == 0 {
		return ""
	}
	file := prop.Files[0]
	switch {
	case file.Type == "external" && file.External != nil:
		return file.External.URL
	case file.Type == "file" && file.File != nil:
		return file.File.URL
	}
	return ""
}

// URLValue returns the value of a url property.
func (p NotionPage) URLValue(name string) string {
	return p.Properties[name].URL
}

// NumberValue returns a number property truncated to int, 0 when
// absent.
func (p NotionPage) NumberValue(name string) int {
	prop, ok := p.Properties[name]
	if !ok || prop.Number == nil {
		return 0
	}
	return int(*prop.Number)
}

// CreatedTimeValue returns the ISO-8601 created_time string, empty
// when absent.
func (p NotionPage) CreatedTimeValue(name string) string {
	return p.Properties[name].CreatedTime
}

// Write-side property constructors, used when appending a page.

func NewTitleProperty(text string) NotionProperty {
	return NotionProperty{Title: []NotionRichText{{Text: &NotionTextSpan{Content: text}}}}
}

func NewRichTextProperty(text string) NotionProperty {
	return NotionProperty{RichText: []NotionRichText{{Text: &NotionTextSpan{Content: text}}}}
}

func NewSelectProperty(name string) NotionProperty {
	return NotionProperty{Select: &NotionSelectValue{Name: name}}
}

func NewMultiSelectProperty(names []string) NotionProperty {
	options := make([]NotionSelectValue, 0, len(names))
	for _, name := range names {
		options = append(options, NotionSelectValue{Name: name})
	}
	return NotionProperty{MultiSelect: options}
}

func NewURLProperty(url string) NotionProperty {
	return NotionProperty{URL: url}
}

func NewCheckboxProperty(checked bool) NotionProperty {
	return NotionProperty{Checkbox: &checked}
}
