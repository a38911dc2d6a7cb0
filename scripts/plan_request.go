//go:build ignore
// +build ignore

// Ручная проверка сервиса: отправляет запрос плана маршрута и печатает ответ.
//
//	go run scripts/plan_request.go -base http://localhost:8000 -start "Los Angeles, CA" -end "New York, NY"
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

func main() {
	baseURL := flag.String("base", "http://localhost:8000", "service base URL")
	start := flag.String("start", "Los Angeles, CA", "start location: address or \"lat,lon\" pair")
	end := flag.String("end", "New York, NY", "end location: address or \"lat,lon\" pair")
	flag.Parse()

	payload, err := json.Marshal(map[string]string{
		"start": *start,
		"end":   *end,
	})
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	// Планирование через всю страну ждет внешние геокодер и роутинг
	client := &http.Client{Timeout: 120 * time.Second}

	resp, err := client.Post(*baseURL+"/api/route/", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Printf("Status: %s\n%s\n", resp.Status, body)
		return
	}

	fmt.Printf("Status: %s\n%s\n", resp.Status, pretty.String())
}
