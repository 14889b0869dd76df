package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
)

const maxErrorBody = 512

// canvasImpl is the internal implementation of Client.
type canvasImpl struct {
	baseURL    string
	perPage    int
	maxPages   int
	httpClient *http.Client
}

// newCanvasImpl wraps the base transport with a static bearer token source.
func newCanvasImpl(cfg Config) *canvasImpl {
	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken, TokenType: "Bearer"})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = cfg.Timeout

	return &canvasImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		perPage:    cfg.PerPage,
		maxPages:   cfg.MaxPages,
		httpClient: httpClient,
	}
}

func (c *canvasImpl) GetSelf(ctx context.Context) (*User, error) {
	var u User
	if err := c.getJSON(ctx, c.endpoint("/users/self", nil), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *canvasImpl) ListActiveCourses(ctx context.Context, include ...string) ([]Course, error) {
	q := includeQuery(include)
	q.Set("enrollment_state", "active")
	return list[Course](ctx, c, "/courses", q)
}

func (c *canvasImpl) GetCourse(ctx context.Context, courseID int64, include ...string) (*Course, error) {
	var course Course
	path := fmt.Sprintf("/courses/%d", courseID)
	if err := c.getJSON(ctx, c.endpoint(path, includeQuery(include)), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *canvasImpl) ListAssignments(ctx context.Context, courseID int64, include ...string) ([]Assignment, error) {
	return list[Assignment](ctx, c, fmt.Sprintf("/courses/%d/assignments", courseID), includeQuery(include))
}

func (c *canvasImpl) ListModules(ctx context.Context, courseID int64, include ...string) ([]Module, error) {
	return list[Module](ctx, c, fmt.Sprintf("/courses/%d/modules", courseID), includeQuery(include))
}

func (c *canvasImpl) ListModuleItems(ctx context.Context, courseID, moduleID int64) ([]ModuleItem, error) {
	return list[ModuleItem](ctx, c, fmt.Sprintf("/courses/%d/modules/%d/items", courseID, moduleID), url.Values{})
}

func (c *canvasImpl) ListFiles(ctx context.Context, courseID int64) ([]File, error) {
	return list[File](ctx, c, fmt.Sprintf("/courses/%d/files", courseID), url.Values{})
}

func (c *canvasImpl) ListAnnouncements(ctx context.Context, courseID int64) ([]DiscussionTopic, error) {
	q := url.Values{}
	q.Set("only_announcements", "true")
	return list[DiscussionTopic](ctx, c, fmt.Sprintf("/courses/%d/discussion_topics", courseID), q)
}

// list follows Link rel="next" up to maxPages pages.
func list[T any](ctx context.Context, c *canvasImpl, path string, q url.Values) ([]T, error) {
	q.Set("per_page", strconv.Itoa(c.perPage))
	next := c.endpoint(path, q)

	items := make([]T, 0)
	for page := 0; next != "" && page < c.maxPages; page++ {
		var batch []T
		link, err := c.get(ctx, next, &batch)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
		next = nextLink(link)
	}
	return items, nil
}

func (c *canvasImpl) getJSON(ctx context.Context, rawURL string, out any) error {
	_, err := c.get(ctx, rawURL, out)
	return err
}

// get performs one GET and decodes the body into out. It returns the Link header.
func (c *canvasImpl) get(ctx context.Context, rawURL string, out any) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("canvas: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("canvas: API call failed: %w", err)
	}
	defer resp.Body.Close()

	// Only 200 carries a usable payload; any other status is a failure.
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &APIError{StatusCode: resp.StatusCode, Path: req.URL.Path, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return "", fmt.Errorf("canvas: failed to decode %s: %w", req.URL.Path, err)
	}
	return resp.Header.Get("Link"), nil
}

func (c *canvasImpl) endpoint(path string, q url.Values) string {
	if len(q) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + q.Encode()
}

func includeQuery(include []string) url.Values {
	q := url.Values{}
	for _, inc := range include {
		q.Add("include[]", inc)
	}
	return q
}

// nextLink extracts the rel="next" target from an RFC 5988 Link header.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(strings.TrimSpace(part), ";")
		if len(segments) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(segments[0]), "<>")
		for _, attr := range segments[1:] {
			if strings.TrimSpace(attr) == `rel="next"` {
				return target
			}
		}
	}
	return ""
}
