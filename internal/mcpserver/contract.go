package mcpserver

// PayloadConventions describes the document conventions that LLM
// consumers should follow when producing payloads for validation.
const PayloadConventions = `# Payload Conventions

Payloads are checked for structural conformance with a named shape of
the Roam host API contract. Use ` + "`list_shapes`" + ` to discover names and
` + "`describe_shape`" + ` for the field-level contract of each.

## Rules

1. **Shape names** are dotted: a surface prefix plus the operation or
   record name (e.g. ` + "`write.create-block`" + `, ` + "`query.pull-result`" + `,
   ` + "`extension.setting-action`" + `).
2. **Required fields must be present.** Optional fields may be omitted
   entirely; never send null to mean "absent".
3. **Enumerated fields** accept only their documented literals, e.g.
   ` + "`text-align`" + ` is one of ` + "`left`" + `, ` + "`center`" + `, ` + "`right`" + `, ` + "`justify`" + `.
4. **Entity identifiers** take exactly three forms: a number (internal
   db id), a string (unique key), or a two-element
   ` + "`[attribute, value]`" + ` array. No object form exists.
5. **Tagged unions** (e.g. setting actions) carry a literal ` + "`type`" + `
   field selecting the variant. Fields belonging to another variant are
   rejected: ` + "`{\"type\": \"select\", \"content\": ...}`" + ` fails because
   ` + "`content`" + ` belongs to ` + "`button`" + `.
6. **Callback fields** (onClick, onChange, callbacks) never appear in a
   JSON payload; they exist only at the host boundary.
7. **Fixture documents** on disk wrap payloads as
   ` + "`{\"shape\": \"<name>\", \"value\": <payload>}`" + ` in UTF-8 ` + "`.json`" + ` files.

## Example

` + "```" + `json
{
  "shape": "write.create-block",
  "value": {
    "location": {"parent-uid": "02-27-2026", "order": "last"},
    "block": {"string": "Review weekly plan", "heading": 2}
  }
}
` + "```" + `
`
