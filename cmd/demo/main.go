// README: Demo harness; trains the models and prints two worked predictions.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"farecast/internal/modules/dataset"
	"farecast/internal/modules/predict"
	"farecast/internal/modules/surge"
)

func main() {
	svc := predict.NewService(predict.DefaultTrainerConfig(), surge.NewResolver(surge.DefaultZones()), nil, nil)
	ctx := context.Background()

	fmt.Println("Training models (this happens once on server startup)...")

	// Rush hour, auto riksha, surge zone, Gulshan pickup.
	printPrediction(ctx, svc, "Prediction Example 1 (Rush Hour, Auto Riksha, Surge Zone, Gulshan Pickup)", predict.Request{
		Pickup:      []float64{23.785, 90.415},
		Destination: []float64{23.8200, 90.4220},
		Hour:        18,
		DayOfWeek:   4,
		IsRainy:     false,
		Category:    dataset.AutoRiksha,
		PickupName:  "Gulshan 1",
	})

	// Off-peak, sunny Monday, motorbike, Mirpur pickup.
	printPrediction(ctx, svc, "Prediction Example 2 (Off-peak, Sunny Monday, Motorbike, Mirpur Pickup)", predict.Request{
		Pickup:      []float64{23.8070, 90.3680},
		Destination: []float64{23.8759, 90.3978},
		Hour:        10,
		DayOfWeek:   0,
		IsRainy:     false,
		Category:    dataset.Motorbike,
		PickupName:  "Mirpur 10",
	})
}

func printPrediction(ctx context.Context, svc *predict.Service, title string, req predict.Request) {
	res, err := svc.Predict(ctx, req)
	if err != nil {
		log.Fatalf("%s: %v", title, err)
	}
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\n--- %s ---\n%s\n", title, out)
}
