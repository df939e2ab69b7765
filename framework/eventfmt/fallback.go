package eventfmt

import (
	"fmt"
	"time"

	"github.com/go-spanlog/spanlog/framework/jsonwriter"
	"github.com/go-spanlog/spanlog/framework/tracing"
)

// fallbackLine builds a minimal, statically-shaped JSON line describing
// a formatting failure, using a freshly allocated writer rather than
// the reusable per-formatter buffer — the one path permitted to
// allocate, since it only runs after the fast path has already failed.
func fallbackLine(now time.Time, event *tracing.Event, cause error) []byte {
	w := jsonwriter.New()
	w.BeginObject()
	w.StringField("timestamp", now.UTC().Format(timestampLayout))
	w.StringField("level", "ERROR")
	w.StringField("message", fmt.Sprintf("event formatting failed: %v", cause))
	w.ObjectField("fields")
	w.StringField("event", fmt.Sprintf("%+v", event.Meta))
	w.EndObject()
	w.EndObject()
	w.WriteRawByte('\n')
	return w.Bytes()
}
