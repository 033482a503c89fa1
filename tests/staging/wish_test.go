//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type pullResponse struct {
	Items []struct {
		ItemID int `json:"item_id"`
		Rarity int `json:"rarity"`
	} `json:"items"`
	State struct {
		Pity5      int `json:"pity5"`
		TotalPulls int `json:"total_pulls"`
	} `json:"state"`
}

func TestBannersListed(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/banners", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var banners []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &banners); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(banners) == 0 {
		t.Error("Expected at least one banner")
	}
}

func TestTenPullRoundTrip(t *testing.T) {
	player := fmt.Sprintf("staging-%d", time.Now().UnixNano())

	resp, body := makeRequest(t, "POST", "/api/v1/wish/pull", map[string]interface{}{
		"player_id": player,
		"banner_id": "standard",
		"times":     10,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var res pullResponse
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(res.Items) != 10 {
		t.Errorf("Expected 10 items, got %d", len(res.Items))
	}
	if res.State.TotalPulls != 10 {
		t.Errorf("Expected total_pulls 10, got %d", res.State.TotalPulls)
	}

	resp, body = makeRequest(t, "GET", "/api/v1/wish/history?player_id="+player, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}
	var hist struct {
		Records []json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(body, &hist); err != nil {
		t.Fatalf("Failed to unmarshal history: %v", err)
	}
	if len(hist.Records) != 10 {
		t.Errorf("Expected 10 history records, got %d", len(hist.Records))
	}
}

func TestInvalidPullRejected(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/wish/pull", map[string]interface{}{
		"player_id": "staging",
		"banner_id": "standard",
		"times":     3,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
