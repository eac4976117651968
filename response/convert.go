package response

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// normalize 先过一遍json，把任意实体拍平成map/slice/标量
func normalize(data any) (any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func renderXML(c *gin.Context, status int, data any) {
	v, err := normalize(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var sb strings.Builder
	sb.WriteString(xml.Header)
	writeXML(&sb, "root", v)
	c.Data(status, "application/xml; charset=utf-8", []byte(sb.String()))
}

func writeXML(sb *strings.Builder, tag string, v any) {
	sb.WriteString("<" + tag + ">")
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeXML(sb, k, t[k])
		}
	case []any:
		for _, item := range t {
			writeXML(sb, "item", item)
		}
	case nil:
	default:
		var esc bytes.Buffer
		xml.EscapeText(&esc, []byte(fmt.Sprint(t)))
		sb.Write(esc.Bytes())
	}
	sb.WriteString("</" + tag + ">")
}

func renderCSV(c *gin.Context, status int, data any) {
	v, err := normalize(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var rows []map[string]any
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				rows = append(rows, m)
			} else {
				rows = append(rows, map[string]any{"value": item})
			}
		}
	case map[string]any:
		rows = append(rows, t)
	default:
		rows = append(rows, map[string]any{"value": t})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if len(rows) > 0 {
		header := make([]string, 0, len(rows[0]))
		for k := range rows[0] {
			header = append(header, k)
		}
		sort.Strings(header)
		if err := w.Write(header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		record := make([]string, len(header))
		for _, row := range rows {
			for i, k := range header {
				if row[k] == nil {
					record[i] = ""
				} else {
					record[i] = fmt.Sprint(row[k])
				}
			}
			if err := w.Write(record); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
	}
	w.Flush()
	c.Data(status, "text/csv; charset=utf-8", buf.Bytes())
}

func renderJSONP(c *gin.Context, status int, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	callback := c.DefaultQuery("jsonp", "callback")
	c.Data(status, "application/javascript; charset=utf-8", []byte(callback+"("+string(b)+");"))
}
