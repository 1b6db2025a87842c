package steps

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
)

// registerDomainSteps registers steps that drive the API to set up domain
// state for a scenario.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAsWithPassword)
	ctx.Step(`^I have a household named "([^"]*)"$`, iHaveAHouseholdNamed)
	ctx.Step(`^the category "([^"]*)" is remembered as "([^"]*)"$`, theCategoryIsRememberedAs)
}

func aRegisteredUserWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	if err := tc.doRequest("POST", "/api/v1/auth/register", body); err != nil {
		return err
	}
	if tc.response.StatusCode != 201 {
		return fmt.Errorf("registration of %s failed with status %d. Body: %s", email, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iAmLoggedInAsWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	if err := tc.doRequest("POST", "/api/v1/auth/login", body); err != nil {
		return err
	}
	if tc.response.StatusCode != 200 {
		return fmt.Errorf("login as %s failed with status %d. Body: %s", email, tc.response.StatusCode, string(tc.responseBody))
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}

	tc.accessToken = auth.AccessToken
	tc.refreshToken = auth.RefreshToken
	tc.saved["refresh_token"] = auth.RefreshToken
	return nil
}

func iHaveAHouseholdNamed(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"name": %q}`, name)
	if err := tc.doRequest("POST", "/api/v1/households", body); err != nil {
		return err
	}
	if tc.response.StatusCode != 201 {
		return fmt.Errorf("creating household %q failed with status %d. Body: %s", name, tc.response.StatusCode, string(tc.responseBody))
	}

	var household struct {
		ID         string `json:"id"`
		InviteCode string `json:"invite_code"`
	}
	if err := json.Unmarshal(tc.responseBody, &household); err != nil {
		return fmt.Errorf("failed to parse household response: %w", err)
	}

	tc.saved["household_id"] = household.ID
	tc.saved["invite_code"] = household.InviteCode
	return nil
}

func theCategoryIsRememberedAs(ctx context.Context, name, key string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if err := tc.doRequest("GET", "/api/v1/categories", ""); err != nil {
		return err
	}
	if tc.response.StatusCode != 200 {
		return fmt.Errorf("listing categories failed with status %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var list struct {
		Categories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(tc.responseBody, &list); err != nil {
		return fmt.Errorf("failed to parse category list: %w", err)
	}

	for _, category := range list.Categories {
		if category.Name == name {
			tc.saved[key] = category.ID
			return nil
		}
	}
	return fmt.Errorf("category %q not found. Body: %s", name, string(tc.responseBody))
}
