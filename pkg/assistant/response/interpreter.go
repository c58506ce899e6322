package response

import (
	"encoding/json"
	"regexp"
	"strings"

	"spi-eshop-be/pkg/department"
)

// ClarifyMessage is shown when the upstream reply carried no usable text.
const ClarifyMessage = "Could you tell me which department or product you are looking for?"

var (
	jsonFence = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFence  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// Response is the normalized reply every search/chat caller receives.
type Response struct {
	Department  *string  `json:"department"`
	SubCategory *string  `json:"subCategory"`
	Suggestions []string `json:"suggestions"`
	Message     string   `json:"message"`
}

type Interpreter struct {
	catalog *department.Catalog
}

func NewInterpreter(catalog *department.Catalog) *Interpreter {
	return &Interpreter{catalog: catalog}
}

// Interpret turns raw upstream text into a Response. It never fails:
// unparseable text becomes the message, with the fallback department attached.
func (i *Interpreter) Interpret(raw string, fallback *department.Department) Response {
	obj, ok := decodeObject(raw)
	if !ok {
		return Response{
			Department:  fallbackCode(fallback),
			Suggestions: []string{},
			Message:     messageOrClarify(raw),
		}
	}

	res := Response{
		Suggestions: suggestionsField(obj["suggestions"]),
		Message:     raw,
	}

	var dept *department.Department
	if name, ok := stringField(obj["department"]); ok {
		dept, _ = i.catalog.Resolve(name)
	}
	if dept == nil && fallback != nil {
		dept, _ = i.catalog.ByCode(fallback.Code)
		if dept == nil {
			dept = fallback
		}
	}
	if dept != nil {
		res.Department = ptr(dept.Code)
	}

	if name, ok := stringField(obj["subCategory"]); ok {
		if dept != nil {
			if sc, found := dept.HasSubCategory(name); found {
				res.SubCategory = ptr(sc)
			}
		} else if sc, found := i.catalog.FindSubCategory(name); found {
			res.SubCategory = ptr(sc)
		}
	}

	if msg, ok := stringField(obj["message"]); ok {
		res.Message = msg
	}
	res.Message = messageOrClarify(res.Message)

	return res
}

// decodeObject tries the fenced block (or whole text) first, then the outermost braces.
func decodeObject(raw string) (map[string]interface{}, bool) {
	candidate := raw
	if m := jsonFence.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	} else if m := anyFence.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	}

	if obj, ok := parseObject(candidate); ok {
		return obj, true
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, false
	}
	return parseObject(raw[start : end+1])
}

func parseObject(s string) (map[string]interface{}, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// stringField accepts only non-blank strings; "null" spelled as text counts as absent.
func stringField(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return "", false
	}
	return s, true
}

func suggestionsField(v interface{}) []string {
	out := []string{}
	switch val := v.(type) {
	case []interface{}:
		for _, item := range val {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	case string:
		if s := strings.TrimSpace(val); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func fallbackCode(d *department.Department) *string {
	if d == nil {
		return nil
	}
	return ptr(d.Code)
}

func messageOrClarify(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return ClarifyMessage
	}
	return msg
}

func ptr(s string) *string {
	return &s
}
