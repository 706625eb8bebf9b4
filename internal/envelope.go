package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const (
	providerDocuSign = "docusign"

	jwtGrantType  = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	jwtGrantScope = "signature impersonation"
	jwtLifetime   = time.Hour
)

type Envelope struct {
	ID     string
	Status string
}

type IEnvelope interface {
	CreateFromTemplate(ctx context.Context, templateID, signerName, signerEmail, subject string) (Envelope, error)
}

type tokenSource interface {
	Token(ctx context.Context) (string, error)
}

type DocuSignEnvelopes struct {
	basePath  string
	accountID string
	roleName  string
	tokens    tokenSource
	client    *http.Client
	logger    *zap.SugaredLogger
}

func NewDocuSignEnvelopes(cfg DocuSignConfig, client *http.Client, logger *zap.SugaredLogger) (*DocuSignEnvelopes, error) {
	var tokens tokenSource = staticToken(cfg.AccessToken)
	if cfg.JWTGrant() {
		pem, err := os.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, err
		}
		g, err := newJWTGrant(cfg.AuthServer, cfg.IntegrationKey, cfg.UserID, pem, client)
		if err != nil {
			return nil, err
		}
		tokens = g
	}

	return &DocuSignEnvelopes{
		basePath:  strings.TrimRight(cfg.BasePath, "/"),
		accountID: cfg.AccountID,
		roleName:  cfg.RoleName,
		tokens:    tokens,
		client:    client,
		logger:    logger,
	}, nil
}

type templateRole struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	RoleName string `json:"roleName"`
}

type envelopeDefinition struct {
	EmailSubject  string         `json:"emailSubject"`
	TemplateID    string         `json:"templateId"`
	TemplateRoles []templateRole `json:"templateRoles"`
	Status        string         `json:"status"`
}

type envelopeSummary struct {
	EnvelopeID string `json:"envelopeId"`
	Status     string `json:"status"`
}

func (d *DocuSignEnvelopes) CreateFromTemplate(ctx context.Context, templateID, signerName, signerEmail, subject string) (Envelope, error) {
	token, err := d.tokens.Token(ctx)
	if err != nil {
		return Envelope{}, NewUpstreamError(providerDocuSign, err)
	}

	def := envelopeDefinition{
		EmailSubject:  subject,
		TemplateID:    templateID,
		TemplateRoles: []templateRole{{Email: signerEmail, Name: signerName, RoleName: d.roleName}},
		Status:        "sent",
	}

	var res envelopeSummary
	u := fmt.Sprintf("%s/v2.1/accounts/%s/envelopes", d.basePath, url.PathEscape(d.accountID))
	err = makeRequest(ctx, d.client, u, map[string]string{"Authorization": "Bearer " + token}, def, &res)
	if err != nil {
		return Envelope{}, NewUpstreamError(providerDocuSign, err)
	}
	if res.EnvelopeID == "" {
		return Envelope{}, NewUpstreamError(providerDocuSign, errors.New("response has no envelopeId"))
	}

	d.logger.Infof("DocuSign envelope created: %s", res.EnvelopeID)
	return Envelope{ID: res.EnvelopeID, Status: res.Status}, nil
}

type staticToken string

func (t staticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// jwtGrant exchanges a self-signed RS256 assertion for an access token and
// caches it until shortly before it expires.
type jwtGrant struct {
	tokenURL       string
	audience       string
	integrationKey string
	userID         string
	key            interface{}
	client         *http.Client
	now            func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

func newJWTGrant(authServer, integrationKey, userID string, pem []byte, client *http.Client) (*jwtGrant, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, err
	}

	base := authServer
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}

	return &jwtGrant{
		tokenURL:       strings.TrimRight(base, "/") + "/oauth/token",
		audience:       u.Host,
		integrationKey: integrationKey,
		userID:         userID,
		key:            key,
		client:         client,
		now:            time.Now,
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (g *jwtGrant) Token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if g.token != "" && now.Before(g.expires) {
		return g.token, nil
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   g.integrationKey,
		"sub":   g.userID,
		"aud":   g.audience,
		"iat":   now.Unix(),
		"exp":   now.Add(jwtLifetime).Unix(),
		"scope": jwtGrantScope,
	}).SignedString(g.key)
	if err != nil {
		return "", err
	}

	form := url.Values{"grant_type": {jwtGrantType}, "assertion": {assertion}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var res tokenResponse
	if err = decodeResponse(g.client, req, &res); err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", errors.New("token response has no access_token")
	}

	g.token = res.AccessToken
	// refresh a minute early
	g.expires = now.Add(time.Duration(res.ExpiresIn)*time.Second - time.Minute)
	return g.token, nil
}
