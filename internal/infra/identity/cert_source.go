package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

// DefaultCertsURL firebase id token 的簽章憑證
const DefaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

const defaultCertsMaxAge = time.Hour

// minRefreshInterval 快取仍有效時, 未知 kid 最多每隔這段時間重新抓取一次
const minRefreshInterval = time.Minute

var ErrUnknownKeyID = errors.New("unknown key id")

// CertKeySource 取得並快取 kid -> RSA 公鑰
//
// 依照回應的 Cache-Control max-age 決定快取時間, 同時間的抓取只會送出一次
type CertKeySource struct {
	url    string
	client *http.Client
	now    func() time.Time
	group  singleflight.Group

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
	fetchedAt time.Time
}

func NewCertKeySource(url string, client *http.Client) *CertKeySource {
	if url == "" {
		url = DefaultCertsURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &CertKeySource{
		url:    url,
		client: client,
		now:    time.Now,
	}
}

// Key 取得 kid 對應的公鑰
//
// 快取過期時重新抓取; 快取有效但找不到 kid 時, 距離上次抓取超過 minRefreshInterval 才會重新抓取
func (s *CertKeySource) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	key, ok, fresh, recent := s.lookup(kid)
	if ok && fresh {
		return key, nil
	}
	if fresh && recent {
		return nil, ErrUnknownKeyID
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	if key, ok, _, _ := s.lookup(kid); ok {
		return key, nil
	}
	return nil, ErrUnknownKeyID
}

func (s *CertKeySource) lookup(kid string) (key *rsa.PublicKey, ok, fresh, recent bool) {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok = s.keys[kid]
	fresh = now.Before(s.expiresAt)
	recent = !s.fetchedAt.IsZero() && now.Sub(s.fetchedAt) < minRefreshInterval
	return key, ok, fresh, recent
}

// refresh 以 singleflight 合併同時間的抓取, 抓取不受單一請求取消影響
func (s *CertKeySource) refresh(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	_, err, _ := s.group.Do("certs", func() (any, error) {
		return nil, s.fetch(ctx)
	})
	return err
}

func (s *CertKeySource) fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch certs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch certs: unexpected status %d", resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return fmt.Errorf("decode certs: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pem := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			return fmt.Errorf("parse cert %s: %w", kid, err)
		}
		keys[kid] = key
	}

	now := s.now()
	s.mu.Lock()
	s.keys = keys
	s.fetchedAt = now
	s.expiresAt = now.Add(maxAge(resp.Header.Get("Cache-Control")))
	s.mu.Unlock()
	return nil
}

func maxAge(cacheControl string) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(directive), "=")
		if !ok || !strings.EqualFold(name, "max-age") {
			continue
		}
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultCertsMaxAge
}
