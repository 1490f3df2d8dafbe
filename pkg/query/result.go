package query

import (
	"encoding/json"
)

// QueryResult is one record returned by the string-based query surface.
// Every documented field is optional; which ones arrive depends on the
// find-spec of the query. The host may also attach fields beyond the
// documented set: those land in Extra, keeping the declared fields
// statically typed instead of collapsing the record into a bare map.
type QueryResult struct {
	DBID       *int64      `json:":db/id,omitempty"`
	UID        string      `json:":block/uid,omitempty"`
	String     string      `json:":block/string,omitempty"`
	Title      string      `json:":node/title,omitempty"`
	Open       *bool       `json:":block/open,omitempty"`
	Order      *int        `json:":block/order,omitempty"`
	Heading    *Heading    `json:":block/heading,omitempty"`
	EditTime   *int64      `json:":edit/time,omitempty"`
	CreateTime *int64      `json:":create/time,omitempty"`
	Page       *EntityRef  `json:":block/page,omitempty"`
	Parents    []EntityRef `json:":block/parents,omitempty"`
	Children   []EntityRef `json:":block/children,omitempty"`

	// Extra holds fields outside the documented set.
	Extra map[string]any `json:"-"`
}

// queryResultAlias avoids recursive codec calls.
type queryResultAlias QueryResult

var queryResultKeys = map[string]struct{}{
	":db/id":          {},
	":block/uid":      {},
	":block/string":   {},
	":node/title":     {},
	":block/open":     {},
	":block/order":    {},
	":block/heading":  {},
	":edit/time":      {},
	":create/time":    {},
	":block/page":     {},
	":block/parents":  {},
	":block/children": {},
}

// UnmarshalJSON decodes the documented fields into their typed slots and
// collects everything else into Extra.
func (r *QueryResult) UnmarshalJSON(data []byte) error {
	var alias queryResultAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, val := range raw {
		if _, known := queryResultKeys[key]; known {
			continue
		}
		var v any
		if err := json.Unmarshal(val, &v); err != nil {
			return err
		}
		if alias.Extra == nil {
			alias.Extra = make(map[string]any)
		}
		alias.Extra[key] = v
	}

	*r = QueryResult(alias)
	return nil
}

// MarshalJSON re-emits the typed fields and the Extra catch-all as one
// flat object, matching the host's wire form.
func (r QueryResult) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(queryResultAlias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return data, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, val := range r.Extra {
		merged[key] = val
	}
	return json.Marshal(merged)
}
