// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/ledgertrack/backend/config"
	"github.com/ledgertrack/backend/internal/infra/dependency"
	"github.com/ledgertrack/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth: tokens per registered email, plus the active token pair
	tokensByEmail map[string]tokenPair
	accessToken   string
	refreshToken  string

	// Named resources created during the scenario, e.g. category ids
	categoryIDs    map[string]string
	transactionIDs map[string]string

	cfg *config.Config
	db  *mock.Db
}

type tokenPair struct {
	access  string
	refresh string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = "integration-test-secret"

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			tokensByEmail:  make(map[string]tokenPair),
			categoryIDs:    make(map[string]string),
			transactionIDs: make(map[string]string),
			cfg:            cfg,
			db:             db,
		}

		injector := dependency.NewInjector(cfg, db.Conn, nil)
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerGivenSteps(ctx)
	registerResponseSteps(ctx)
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
}

func registerGivenSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I have a category "([^"]*)" of type "([^"]*)"$`, iHaveACategoryOfType)
	ctx.Step(`^I have an? (expense|income) of "([^"]*)" described "([^"]*)" on "([^"]*)"$`, iHaveATransaction)
	ctx.Step(`^I have an? (expense|income) of "([^"]*)" described "([^"]*)" on "([^"]*)" in category "([^"]*)"$`, iHaveACategorizedTransaction)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// substitute replaces {category:Name} and {transaction:Description}
// placeholders with the ids captured by the Given steps.
func (tc *TestContext) substitute(s string) string {
	for name, id := range tc.categoryIDs {
		s = strings.ReplaceAll(s, "{category:"+name+"}", id)
	}
	for desc, id := range tc.transactionIDs {
		s = strings.ReplaceAll(s, "{transaction:"+desc+"}", id)
	}
	return s
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+tc.substitute(endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, bytes.NewBufferString(tc.substitute(body.Content))); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	tc.refreshToken = ""
	return SetTestContext(ctx, tc), nil
}

// aRegisteredUserWithPassword registers a user through the public API and
// stores the issued tokens for later authentication steps.
func aRegisteredUserWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	payload := map[string]string{
		"email":    email,
		"password": password,
		"name":     "Test User",
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(tc.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return ctx, fmt.Errorf("registration request failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with status %d: %s", resp.StatusCode, string(data))
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(data, &auth); err != nil {
		return ctx, fmt.Errorf("failed to parse registration response: %w", err)
	}

	tc.tokensByEmail[email] = tokenPair{access: auth.AccessToken, refresh: auth.RefreshToken}
	return SetTestContext(ctx, tc), nil
}

func iAmAuthenticatedAs(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	pair, ok := tc.tokensByEmail[email]
	if !ok {
		return ctx, fmt.Errorf("no registered user %q, add a registration step first", email)
	}
	tc.accessToken = pair.access
	tc.refreshToken = pair.refresh
	return SetTestContext(ctx, tc), nil
}

func iHaveACategoryOfType(ctx context.Context, name, categoryType string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	payload := map[string]string{"name": name, "type": categoryType}
	body, _ := json.Marshal(payload)
	if err := tc.doRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("category creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return ctx, fmt.Errorf("failed to parse category response: %w", err)
	}
	tc.categoryIDs[name] = created.ID
	return SetTestContext(ctx, tc), nil
}

func iHaveATransaction(ctx context.Context, transactionType, amount, description, transactionDate string) (context.Context, error) {
	return createTransaction(ctx, transactionType, amount, description, transactionDate, "")
}

func iHaveACategorizedTransaction(ctx context.Context, transactionType, amount, description, transactionDate, categoryName string) (context.Context, error) {
	return createTransaction(ctx, transactionType, amount, description, transactionDate, categoryName)
}

func createTransaction(ctx context.Context, transactionType, amount, description, transactionDate, categoryName string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	payload := map[string]any{
		"amount":      amount,
		"description": description,
		"type":        transactionType,
		"date":        transactionDate,
	}
	if categoryName != "" {
		categoryID, ok := tc.categoryIDs[categoryName]
		if !ok {
			return ctx, fmt.Errorf("no category %q, add a category step first", categoryName)
		}
		payload["category_id"] = categoryID
	}

	body, _ := json.Marshal(payload)
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("transaction creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return ctx, fmt.Errorf("failed to parse transaction response: %w", err)
	}
	tc.transactionIDs[description] = created.ID
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response should not contain %q. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

// lookupField walks a dot-separated path through the parsed response.
// Numeric segments index into arrays.
func lookupField(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := lookupField(data, field)
	if !ok {
		return fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := lookupField(data, field); !ok {
		return fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
	}
	return nil
}

func theResponseListShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := lookupField(data, field)
	if !ok {
		return fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", field)
	}
	if len(list) != expected {
		return fmt.Errorf("expected %d items in %q, got %d. Body: %s", expected, field, len(list), string(tc.responseBody))
	}
	return nil
}
