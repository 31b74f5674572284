package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/apperr"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
)

const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client rooted at baseURL (e.g.
// "http://127.0.0.1:8080/api"). timeout bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userEnvelope struct {
	User models.UserProfile `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var out models.Session
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, errors.New("login response has no token")
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, p models.RegistrationPayload) (*models.UserProfile, error) {
	body, contentType, err := registrationBody(p)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/register", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var out userEnvelope
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, code string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/verify-otp", map[string]string{"otp": code}, nil)
}

func (c *HTTPClient) ResendOTP(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/resend-otp", struct{}{}, nil)
}

func (c *HTTPClient) ComplaintsByResident(ctx context.Context, residentID string) ([]models.Complaint, error) {
	out := []models.Complaint{}
	path := "/complaints/resident/" + url.PathEscape(residentID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Announcements(ctx context.Context) ([]models.Announcement, error) {
	out := []models.Announcement{}
	if err := c.doJSON(ctx, http.MethodGet, "/announcements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/ping", nil, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.bearer(); tok != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+tok)
	}
	return req, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}

func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &body)
	return &apperr.ResponseError{StatusCode: resp.StatusCode, Message: body.Message}
}

func registrationBody(p models.RegistrationPayload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"name", p.Name},
		{"birthdate", p.Birthdate},
		{"address", p.Address},
		{"email", p.Email},
		{"password", p.Password},
		{"confirmPassword", p.ConfirmPassword},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}

	if p.Clearance != nil {
		if err := writeClearance(w, p.Clearance); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func writeClearance(w *multipart.Writer, cl *models.Clearance) error {
	f, err := os.Open(cl.URI)
	if err != nil {
		return fmt.Errorf("open clearance: %w", err)
	}
	defer f.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="clearance"; filename=%q`, cl.Name))
	ct := cl.MimeType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create clearance part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy clearance: %w", err)
	}
	return nil
}
