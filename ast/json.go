package ast

// ToMap converts a tree into the generic map form used for JSON
// output. Every node carries a "type" discriminator so consumers can
// dispatch without reflection.
func ToMap(n Node) map[string]interface{} {
	switch x := n.(type) {
	case nil:
		return nil
	case *Value:
		m := map[string]interface{}{"type": "value", "text": x.Text}
		if x.Wildcard {
			m["wildcard"] = true
		}
		return m
	case *ExactMatch:
		return map[string]interface{}{"type": "exact", "text": x.Text}
	case *PartialMatch:
		m := map[string]interface{}{"type": "partial", "text": x.Text}
		if x.Wildcard {
			m["wildcard"] = true
		}
		return m
	case *Regex:
		return map[string]interface{}{"type": "regex", "text": x.Text}
	case *Keyword:
		return map[string]interface{}{"type": "keyword", "name": x.Name}
	case *Empty:
		return map[string]interface{}{"type": "empty"}
	case *ValueOp:
		return map[string]interface{}{"type": "value_op", "value": ToMap(x.Value)}
	case *KeywordOp:
		return map[string]interface{}{"type": "keyword_op", "keyword": x.Keyword.Name, "value": ToMap(x.Value)}
	case *NestedKeywordOp:
		return map[string]interface{}{"type": "nested_keyword_op", "keyword": x.Keyword.Name, "query": ToMap(x.Query)}
	case *RangeOp:
		return map[string]interface{}{"type": "range", "lower": ToMap(x.Lower), "upper": ToMap(x.Upper)}
	case *GreaterThanOp:
		return map[string]interface{}{"type": "gt", "value": ToMap(x.Value)}
	case *GreaterEqualOp:
		return map[string]interface{}{"type": "gte", "value": ToMap(x.Value)}
	case *LessThanOp:
		return map[string]interface{}{"type": "lt", "value": ToMap(x.Value)}
	case *LessEqualOp:
		return map[string]interface{}{"type": "lte", "value": ToMap(x.Value)}
	case *NotOp:
		return map[string]interface{}{"type": "not", "child": ToMap(x.Child)}
	case *AndOp:
		return map[string]interface{}{"type": "and", "left": ToMap(x.Left), "right": ToMap(x.Right)}
	case *OrOp:
		return map[string]interface{}{"type": "or", "left": ToMap(x.Left), "right": ToMap(x.Right)}
	case *Group:
		return map[string]interface{}{"type": "group", "child": ToMap(x.Child)}
	case *MalformedQuery:
		return map[string]interface{}{"type": "malformed", "words": x.Words}
	case *QueryWithMalformedPart:
		return map[string]interface{}{"type": "partial_parse", "recognized": ToMap(x.Recognized), "malformed": ToMap(x.Malformed)}
	}
	return nil
}
