package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func errInvalidOutput(format string) error {
	return fmt.Errorf("invalid output format %q: must be text or json", format)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		o.printUsers(v)
	case HealthResult:
		_, _ = fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	FavoriteClub string `json:"favoriteClub"`
	NewsLetter   any    `json:"newsLetter"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	_, _ = fmt.Fprintf(o.w, "User: %s (%s)\n", u.Username, u.ID)
	_, _ = fmt.Fprintf(o.w, "Club: %s\n", u.FavoriteClub)
	_, _ = fmt.Fprintf(o.w, "Newsletter: %v\n", u.NewsLetter)
}

func (o *Output) printUsers(users []User) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tUSERNAME\tCLUB\tNEWSLETTER")
	for _, u := range users {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", u.ID, u.Username, u.FavoriteClub, u.NewsLetter)
	}
	_ = tw.Flush()
	_, _ = fmt.Fprintf(o.w, "%d user(s)\n", len(users))
}
