package translator

// Rule turns a raw controller variable into a characteristic value. An empty
// raw value means the controller has no value. Rules never fail: every miss
// resolves to the rule's declared default.
type Rule interface {
	Translate(raw string) interface{}
}
