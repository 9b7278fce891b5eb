package draft

import (
	"fmt"
	"time"

	ttlcache "github.com/jellydator/ttlcache/v3"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pyama86/irtrack/domain/entity"
	"github.com/russross/blackfriday/v2"
)

// Renderer converts response-plan templates from markdown to sanitized HTML.
type Renderer struct {
	policy *bluemonday.Policy
	cache  *ttlcache.Cache[string, string]
}

func NewRenderer(ttl time.Duration) *Renderer {
	return &Renderer{
		policy: bluemonday.UGCPolicy(),
		cache:  ttlcache.New(ttlcache.WithTTL[string, string](ttl)),
	}
}

// Start runs the expiry loop until Stop is called.
func (r *Renderer) Start() {
	r.cache.Start()
}

func (r *Renderer) Stop() {
	r.cache.Stop()
}

func (r *Renderer) HTML(t entity.IncidentType) string {
	// 更新されたら別キーになる
	key := fmt.Sprintf("%s@%d", t.ID, t.LastModified.UnixNano())
	if item := r.cache.Get(key); item != nil {
		return item.Value()
	}

	html := Markdown(r.policy, t.DraftTemplate)
	r.cache.Set(key, html, ttlcache.DefaultTTL)
	return html
}

// Len reports how many rendered drafts are cached.
func (r *Renderer) Len() int {
	return r.cache.Len()
}

func Markdown(policy *bluemonday.Policy, md string) string {
	unsafe := blackfriday.Run([]byte(md))
	return string(policy.SanitizeBytes(unsafe))
}
