package query

// PullPattern is the selection-specification string of a pull call,
// naming which fields and relations to hydrate, e.g.
// "[:block/uid :block/string {:block/children ...}]". "[*]" selects
// everything one level deep.
type PullPattern string

// PullPatternAll selects every attribute of the entity.
const PullPatternAll PullPattern = "[*]"

// PullResult is a hydrated record returned by the pull surface. A block
// record carries UID and String; a page record carries UID and Title.
// Relation collections hold entity references only; hydrating them takes
// further pull calls with the references' identifiers.
type PullResult struct {
	DBID   int64  `json:":db/id"`
	UID    string `json:":block/uid"`
	String string `json:":block/string,omitempty"`
	Title  string `json:":node/title,omitempty"`

	Open       *bool     `json:":block/open,omitempty"`
	Order      *int      `json:":block/order,omitempty"`
	Heading    *Heading  `json:":block/heading,omitempty"`
	TextAlign  TextAlign `json:":block/text-align,omitempty"`
	ViewType   ViewType  `json:":children/view-type,omitempty"`
	EditTime   *int64    `json:":edit/time,omitempty"`
	CreateTime *int64    `json:":create/time,omitempty"`

	Page     *EntityRef  `json:":block/page,omitempty"`
	Parents  []EntityRef `json:":block/parents,omitempty"`
	Children []EntityRef `json:":block/children,omitempty"`
	Refs     []EntityRef `json:":block/refs,omitempty"`
}

// IsPage reports whether the record is a page (named container) rather
// than a block.
func (r *PullResult) IsPage() bool {
	return r.Title != ""
}

// EntityID returns the identifier of the record itself, preferring the
// unique key when present.
func (r *PullResult) EntityID() EntityID {
	if r.UID != "" {
		return Lookup(":block/uid", r.UID)
	}
	return DBID(r.DBID)
}
