// Package log emits one JSON line per application event: audit records
// for order, stock and account mutations, security denials, and errors.
// The fiber access log (method/path/status per request) is the logger
// middleware's job; this package covers what that line cannot say.
package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"llantera/internal/domain"
)

type record struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	Action string         `json:"action,omitempty"`
	ReqID  string         `json:"req_id,omitempty"`
	SID    string         `json:"sid,omitempty"`
	UserID string         `json:"user_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func write(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	r := record{
		TS:     time.Now().UTC().Format(time.RFC3339),
		Level:  level,
		Action: action,
		Fields: fields,
	}
	if c != nil {
		r.IP = c.IP()
		r.Method = c.Method()
		r.Path = c.Path()
		r.Status = c.Response().StatusCode()
		r.SID = c.Cookies("sid")
		if rid, ok := c.Locals("requestid").(string); ok {
			r.ReqID = rid
		}
		if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
			r.UserID = u.ID
		}
	}
	if err != nil {
		r.Err = err.Error()
	}
	b, _ := json.Marshal(r)
	log.Println(string(b))
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { write("info", c, action, nil, fields) }

// Audit records a state change an admin may need to trace later: orders
// placed, stock adjusted, products changed, logins.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write("audit", c, action, nil, fields)
}

// Security records a denied or suspicious request.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write("warn", c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}
