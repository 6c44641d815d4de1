package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line per page event: "event=orders.create ...".
// The request id is "-" for work done outside a request; detail should
// be a short summary, never a raw payload.
func LogEvent(requestID, module, action, detail string) {
	reqID := strings.TrimSpace(requestID)
	if reqID == "" {
		reqID = "-"
	}
	log.Printf("event=%s.%s request_id=%s detail=%q", module, action, reqID, detail)
}
