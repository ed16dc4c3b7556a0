// Package explore provides an interactive terminal session over the
// rendering and hover engine: documents are rendered to indexed sentences,
// and hover/click interactions are driven by token index instead of pointer
// events.
package explore

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/tokmark/hover"
	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/render"
	"github.com/revelaction/tokmark/stat"
	"github.com/revelaction/tokmark/storage"
	"github.com/revelaction/tokmark/token"
)

type Handler struct {
	DocRepo  storage.DocReader
	Renderer *render.Renderer
	Ctrl     *hover.Controller

	// current document state
	doc    token.Document
	hasDoc bool
}

func NewHandler(dr storage.DocReader, r *render.Renderer, ctrl *hover.Controller) *Handler {
	return &Handler{
		DocRepo:  dr,
		Renderer: r,
		Ctrl:     ctrl,
	}
}

var commands = []prompt.Suggest{
	{Text: "doc", Description: "load and render a document: doc <id>"},
	{Text: "hover", Description: "hover a token: hover <index>"},
	{Text: "leave", Description: "leave the hovered token"},
	{Text: "click", Description: "click a token: click <index>"},
	{Text: "person", Description: "person-query address: person <index>"},
	{Text: "entity", Description: "entity-query address: entity <index>"},
	{Text: "sent", Description: "sentence-parse address: sent <paragraph> <sentence>"},
	{Text: "names", Description: "list the name registry"},
	{Text: "stat", Description: "document statistics"},
	{Text: "quit", Description: "exit"},
}

func (h *Handler) Run(ctx context.Context) error {
	fmt.Println("🔖 doc <id> to load, hover <index> to inspect, quit to exit")

	history := []string{}
	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("tokmark explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if in == "quit" {
			return nil
		}
		history = append(history, in)

		if err := h.dispatch(ctx, in); err != nil {
			fmt.Printf("✍  %v\n", err)
		}
	}
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	befCursor := in.TextBeforeCursor()
	if befCursor == "" {
		return nil
	}
	if strings.Contains(befCursor, " ") {
		return nil
	}
	return prompt.FilterHasPrefix(commands, befCursor, true)
}

func (h *Handler) dispatch(ctx context.Context, in string) error {
	fields := strings.Fields(in)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "doc":
		if len(args) != 1 {
			return fmt.Errorf("usage: doc <id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a document id: %s", args[0])
		}
		return h.loadDoc(id)

	case "hover":
		ix, err := h.tokenArg(args)
		if err != nil {
			return err
		}
		h.Ctrl.HoverIn(ctx, ix)
		return nil

	case "leave":
		h.Ctrl.HoverOut()
		return nil

	case "click":
		ix, err := h.tokenArg(args)
		if err != nil {
			return err
		}
		t, ok := h.Ctrl.Token(ix)
		if !ok {
			return fmt.Errorf("no token w%d", ix)
		}
		switch t.Kind {
		case token.Person:
			fmt.Println("  ➜ " + h.Ctrl.PersonURL(ix, t.Text))
		case token.Entity:
			fmt.Println("  ➜ " + h.Ctrl.EntityURL(ix, t.Text))
		default:
			return fmt.Errorf("token w%d is not clickable", ix)
		}
		return nil

	case "person":
		ix, err := h.tokenArg(args)
		if err != nil {
			return err
		}
		t, _ := h.Ctrl.Token(ix)
		fmt.Println("  ➜ " + h.Ctrl.PersonURL(ix, t.Text))
		return nil

	case "entity":
		ix, err := h.tokenArg(args)
		if err != nil {
			return err
		}
		t, _ := h.Ctrl.Token(ix)
		fmt.Println("  ➜ " + h.Ctrl.EntityURL(ix, t.Text))
		return nil

	case "sent":
		return h.sentence(args)

	case "names":
		return h.names()

	case "stat":
		return h.stat()
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

func (h *Handler) tokenArg(args []string) (int, error) {
	if !h.hasDoc {
		return 0, fmt.Errorf("no document loaded")
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: <command> <token index>")
	}
	ix, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("not a token index: %s", args[0])
	}
	return ix, nil
}

// loadDoc renders a document and prints its sentences with the index range
// of their annotated tokens.
func (h *Handler) loadDoc(id int) error {
	doc, err := h.DocRepo.Read(id)
	if err != nil {
		return err
	}

	h.doc = doc
	h.Ctrl.SetResult(h.Renderer.Document(doc))
	h.hasDoc = true

	if doc.Title != "" {
		fmt.Printf("📖 %d %s\n", id, doc.Title)
	}

	// Recount per sentence so each line can show its token index range.
	next := 0
	for pi, p := range h.doc.Paragraphs {
		for si, s := range p {
			first := next
			for _, t := range s {
				if t.Kind != token.Punctuation {
					next++
				}
			}
			if next == first {
				fmt.Printf("✍  %d-%d %s\n", pi, si, render.Text(s))
				continue
			}
			fmt.Printf("✍  %d-%d [w%d..w%d] %s\n", pi, si, first, next-1, render.Text(s))
		}
	}
	return nil
}

func (h *Handler) sentence(args []string) error {
	if !h.hasDoc {
		return fmt.Errorf("no document loaded")
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: sent <paragraph> <sentence>")
	}
	pi, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a paragraph index: %s", args[0])
	}
	si, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("not a sentence index: %s", args[1])
	}
	if pi < 0 || pi >= len(h.doc.Paragraphs) || si < 0 || si >= len(h.doc.Paragraphs[pi]) {
		return fmt.Errorf("no sentence %d-%d", pi, si)
	}

	fmt.Println("  ➜ " + hover.SentenceURL(render.Text(h.doc.Paragraphs[pi][si])))
	return nil
}

func (h *Handler) names() error {
	if h.Renderer.Registry == nil {
		return fmt.Errorf("no registry configured")
	}
	entries := h.Renderer.Registry.Sorted()
	if len(entries) == 0 {
		fmt.Println("  (no names)")
		return nil
	}
	for _, e := range entries {
		line := e.Name
		if e.Title != "" {
			line += " — " + e.Title
		}
		marker := "👤"
		if e.Kind == register.Entity {
			marker = "🏛"
		}
		fmt.Printf("  %s %s\n", marker, line)
	}
	return nil
}

func (h *Handler) stat() error {
	if !h.hasDoc {
		return fmt.Errorf("no document loaded")
	}
	hdl := stat.NewHandler()
	hdl.Aggregate(h.doc)
	s := hdl.Get()
	fmt.Printf("  %d tokens, %d sentences, %d parsed (%.0f%%)\n",
		s.Tokens, s.Sentences, s.Parsed, s.ParseRatio()*100)
	if s.Ambiguity > 0 {
		fmt.Printf("  ambiguity %.2f\n", s.Ambiguity)
	}
	return nil
}
