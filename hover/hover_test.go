package hover

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/revelaction/tokmark/lookup"
	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/render"
	"github.com/revelaction/tokmark/token"
)

// recorder is a Display capturing popup updates.
type recorder struct {
	mu     sync.Mutex
	popups []Popup
	hidden int
	locs   chan lookup.LocInfo
	imgs   chan lookup.Image
}

func newRecorder() *recorder {
	return &recorder{
		locs: make(chan lookup.LocInfo, 4),
		imgs: make(chan lookup.Image, 4),
	}
}

func (r *recorder) ShowPopup(p Popup) {
	r.mu.Lock()
	r.popups = append(r.popups, p)
	r.mu.Unlock()
}

func (r *recorder) ShowLocation(li lookup.LocInfo) { r.locs <- li }
func (r *recorder) ShowImage(img lookup.Image)     { r.imgs <- img }

func (r *recorder) HidePopup() {
	r.mu.Lock()
	r.hidden++
	r.mu.Unlock()
}

func (r *recorder) lastPopup(t *testing.T) Popup {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.popups)
	return r.popups[len(r.popups)-1]
}

func newTestController(t *testing.T, baseURL string, reg *register.Registry, d Display) *Controller {
	t.Helper()
	client := lookup.NewClient(baseURL)
	loc, err := lookup.NewLocCache(client, 0)
	require.NoError(t, err)
	img, err := lookup.NewImageCache(client, 0)
	require.NoError(t, err)
	return NewController(reg, loc, img, d)
}

func renderDoc(t *testing.T, c *Controller, doc token.Document) {
	t.Helper()
	c.SetResult(render.NewRenderer().Document(doc))
}

func oneSentenceDoc(s token.Sentence) token.Document {
	return token.Document{Paragraphs: []token.Paragraph{{s}}}
}

func TestHoverLocationEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/locinfo", r.URL.Path)
		require.Equal(t, "placename", r.URL.Query().Get("kind"))
		require.Equal(t, "Reykjavík", r.URL.Query().Get("name"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"found": true, "desc": "höfuðborg"})
	}))
	defer srv.Close()

	rec := newRecorder()
	c := newTestController(t, srv.URL, nil, rec)
	renderDoc(t, c, oneSentenceDoc(token.Sentence{
		{Text: "Reykjavík", Kind: token.Word, Meaning: &token.Meaning{
			Lemma: "Reykjavík", Class: "entity", Subclass: "borg",
		}},
	}))

	c.HoverIn(context.Background(), 0)

	p := rec.lastPopup(t)
	require.Equal(t, "Reykjavík", p.Lemma)
	require.Equal(t, "örnefni", p.Grammar)

	select {
	case li := <-rec.locs:
		require.Equal(t, "höfuðborg", li.Desc)
	case <-time.After(2 * time.Second):
		t.Fatal("location info never arrived")
	}
}

func TestHoverPersonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/image", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("thumb"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"found":true,"image":["https://example.com/h.jpg",60,80]}`))
	}))
	defer srv.Close()

	rec := newRecorder()
	c := newTestController(t, srv.URL, nil, rec)
	renderDoc(t, c, oneSentenceDoc(token.Sentence{
		{Text: "Clinton", Kind: token.Person, Aux: []byte(`"Hillary Rodham Clinton"`)},
	}))

	c.HoverIn(context.Background(), 0)

	p := rec.lastPopup(t)
	require.Equal(t, "Hillary Rodham Clinton", p.Lemma)
	require.Equal(t, "mannsnafn", p.Grammar)

	select {
	case img := <-rec.imgs:
		require.Equal(t, "https://example.com/h.jpg", img.URL)
	case <-time.After(2 * time.Second):
		t.Fatal("image never arrived")
	}
}

func TestHoverSingleWordPersonNoImageLookup(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	rec := newRecorder()
	c := newTestController(t, srv.URL, nil, rec)
	renderDoc(t, c, oneSentenceDoc(token.Sentence{
		{Text: "Bubbi", Kind: token.Person, Aux: []byte(`"Bubbi"`)},
	}))

	c.HoverIn(context.Background(), 0)
	time.Sleep(50 * time.Millisecond)
	require.False(t, called, "single-word names have no image lookup")
	require.NotEmpty(t, rec.popups)
}

func TestHoverUnknownIndexNoop(t *testing.T) {
	rec := newRecorder()
	c := newTestController(t, "http://localhost:0", nil, rec)

	c.HoverIn(context.Background(), 99)
	require.Empty(t, rec.popups)
}

func TestHoverUnparsedTokenNoop(t *testing.T) {
	rec := newRecorder()
	c := newTestController(t, "http://localhost:0", nil, rec)
	renderDoc(t, c, oneSentenceDoc(token.Sentence{
		{Text: "hrglbr", Kind: token.Word, Err: true},
	}))

	c.HoverIn(context.Background(), 0)
	require.Empty(t, rec.popups)
}

func TestHoverOutCancelsAndHides(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	rec := newRecorder()
	c := newTestController(t, srv.URL, nil, rec)
	renderDoc(t, c, oneSentenceDoc(token.Sentence{
		{Text: "Reykjavík", Kind: token.Word, Meaning: &token.Meaning{
			Lemma: "Reykjavík", Class: "entity", Subclass: "borg",
		}},
	}))

	c.HoverIn(context.Background(), 0)
	c.HoverOut()
	c.HoverOut() // idempotent

	require.Equal(t, 2, rec.hidden)
	select {
	case <-rec.locs:
		t.Fatal("cancelled lookup must not surface a result")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPopupGrammarDescription(t *testing.T) {
	rec := newRecorder()
	c := newTestController(t, "http://localhost:0", nil, rec)
	renderDoc(t, c, oneSentenceDoc(token.Sentence{
		{Text: "hestinum", Kind: token.Word, Meaning: &token.Meaning{
			Lemma: "hestur", Class: "kk", Subclass: "alm", Inflection: "ET-ÞGF-gr",
		}},
	}))

	c.HoverIn(context.Background(), 0)
	p := rec.lastPopup(t)
	require.Equal(t, "hestur", p.Lemma)
	require.Equal(t, "nafnorð, karlkyn, eintala, þágufall, með greini", p.Grammar)
	require.Equal(t, "kk", p.Class)
}

func TestPopupPercent(t *testing.T) {
	rec := newRecorder()
	c := newTestController(t, "http://localhost:0", nil, rec)
	renderDoc(t, c, oneSentenceDoc(token.Sentence{
		{Text: "12,5%", Kind: token.Percent, Aux: []byte(`12.5`)},
	}))

	c.HoverIn(context.Background(), 0)
	p := rec.lastPopup(t)
	require.True(t, p.HasPercent)
	require.Equal(t, 12.5, p.Percent)
}

func TestPersonURLResolvesRef(t *testing.T) {
	reg := register.New()
	rec := newRecorder()
	c := newTestController(t, "http://localhost:0", reg, rec)

	r := render.NewRenderer()
	r.Registry = reg
	res := r.Document(oneSentenceDoc(token.Sentence{
		{Text: "Clinton", Kind: token.Person, Aux: []byte(`"Hillary Rodham Clinton"`)},
	}))
	c.SetResult(res)

	got := c.PersonURL(0, "Clinton")
	require.Equal(t, "/?f=q&q="+"Hver+er+Hillary+Rodham+Clinton%3F", got)

	// no backing token: display text, resolved through the registry
	got = c.PersonURL(-1, "Clinton")
	require.Equal(t, "/?f=q&q="+"Hver+er+Hillary+Rodham+Clinton%3F", got)
}

func TestEntityURL(t *testing.T) {
	rec := newRecorder()
	c := newTestController(t, "http://localhost:0", nil, rec)
	renderDoc(t, c, oneSentenceDoc(token.Sentence{
		{Text: "Vestur - Þýskaland", Kind: token.Entity},
	}))

	got := c.EntityURL(0, "ignored")
	require.Equal(t, "/?f=q&q="+"Hva%C3%B0+er+Vestur-%C3%9E%C3%BDskaland%3F", got)
}

func TestSentenceURL(t *testing.T) {
	require.Equal(t, "/treegrid?txt=%C3%89g%2C+hann.", SentenceURL("Ég, hann."))
}
