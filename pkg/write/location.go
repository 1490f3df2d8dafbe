// Package write describes the mutation surface of the Roam host:
// create/update/move/delete/reorder for blocks and pages, plus the user
// record upsert and undo/redo. Every parameter shape carries a Validate
// method enforcing the documented required fields and literal domains.
package write

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Order places a block among its siblings: either an explicit zero-based
// index or one of the positional keywords "first" and "last".
type Order struct {
	index   int
	keyword string
}

// OrderIndex places the block at an explicit sibling index.
func OrderIndex(i int) Order {
	return Order{index: i}
}

// OrderFirst places the block before all current siblings.
func OrderFirst() Order {
	return Order{keyword: "first"}
}

// OrderLast places the block after all current siblings.
func OrderLast() Order {
	return Order{keyword: "last"}
}

// Index returns the explicit index and whether that form is carried.
func (o Order) Index() (int, bool) {
	return o.index, o.keyword == ""
}

// Keyword returns the positional keyword and whether that form is carried.
func (o Order) Keyword() (string, bool) {
	return o.keyword, o.keyword != ""
}

// MarshalJSON emits either the index number or the keyword string.
func (o Order) MarshalJSON() ([]byte, error) {
	if o.keyword != "" {
		return json.Marshal(o.keyword)
	}
	return json.Marshal(o.index)
}

// UnmarshalJSON accepts a number or one of the keywords "first"/"last".
func (o *Order) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*o = OrderIndex(i)
		return nil
	}
	var kw string
	if err := json.Unmarshal(data, &kw); err != nil {
		return fmt.Errorf("order: expected index or keyword")
	}
	switch kw {
	case "first", "last":
		*o = Order{keyword: kw}
		return nil
	default:
		return fmt.Errorf("order: unknown keyword %q", kw)
	}
}

// Validate rejects negative explicit indexes.
func (o Order) Validate() error {
	if o.keyword != "" {
		return nil
	}
	return validation.Validate(o.index, validation.Min(0))
}

// Location is the placement descriptor of block mutations: the unique key
// of the future parent (a block or a page) and the sibling position.
type Location struct {
	ParentUID string `json:"parent-uid"`
	Order     Order  `json:"order"`
}

// Validate enforces the required parent key.
func (l Location) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.ParentUID, validation.Required),
		validation.Field(&l.Order),
	)
}
