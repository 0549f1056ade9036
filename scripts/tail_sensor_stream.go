//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"
)

type sensorReading struct {
	Temperature int       `json:"temperature"`
	Humidity    int       `json:"humidity"`
	CrowdLevel  string    `json:"crowdLevel"`
	AirQuality  string    `json:"airQuality"`
	RecordedAt  time.Time `json:"recordedAt"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	stream := flag.String("stream", "stream:sensor:readings", "Stream name")
	fromStart := flag.Bool("from-start", false, "Read the stream from the beginning")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	lastID := "$"
	if *fromStart {
		lastID = "0"
	}

	fmt.Printf("⏳ Tailing %s (Ctrl+C to stop)...\n", *stream)

	for {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{*stream, lastID},
			Count:   10,
			Block:   5 * time.Second,
		}).Result()

		if ctx.Err() != nil {
			fmt.Println("\nStopped")
			return
		}
		if err == redis.Nil {
			continue
		}
		if err != nil {
			log.Fatalf("Failed to read stream: %v", err)
		}

		for _, s := range results {
			for _, msg := range s.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var r sensorReading
				if err := json.Unmarshal([]byte(dataStr), &r); err != nil {
					fmt.Printf("❌ %s: malformed payload: %v\n", msg.ID, err)
					continue
				}

				fmt.Printf("%s  %s  %2d°C  %2d%%  crowd=%-6s air=%s\n",
					msg.ID,
					r.RecordedAt.Local().Format("15:04:05"),
					r.Temperature,
					r.Humidity,
					r.CrowdLevel,
					r.AirQuality,
				)
			}
		}
	}
}
