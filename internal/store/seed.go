package store

import (
	"time"

	"github.com/google/uuid"
)

// DemoClientID is the fixed client identity that posts the seeded tasks.
// Multi-client identity is out of scope; the client console filters on it.
const DemoClientID = "client-demo"

// seedState builds the first-run demonstration state: three open tasks
// covering each task type and the demo contributor with a zero balance.
// Seed ids derive from stable names so reseeding is deterministic.
func seedState(now time.Time, contributorID, contributorName string) State {
	return State{
		Tasks: []Task{
			{
				ID:        seedID("task:sentiment"),
				Title:     "Label Sentiment (Text)",
				Type:      TaskText,
				Content:   "This movie was awesome! Best I've seen.",
				Reward:    5,
				CreatedBy: DemoClientID,
				CreatedAt: now,
				Status:    StatusOpen,
			},
			{
				ID:        seedID("task:rate-answer"),
				Title:     "Rate AI Answer",
				Type:      TaskRating,
				Content:   "Q: What's climate change? A: It's when weather changes.",
				Reward:    3,
				CreatedBy: DemoClientID,
				CreatedAt: now,
				Status:    StatusOpen,
			},
			{
				ID:        seedID("task:identify-object"),
				Title:     "Image: Identify object",
				Type:      TaskImage,
				Content:   "https://via.placeholder.com/300?text=Car",
				Reward:    6,
				CreatedBy: DemoClientID,
				CreatedAt: now,
				Status:    StatusOpen,
			},
		},
		Submissions: []Submission{},
		Users: []User{
			{ID: contributorID, Name: contributorName, Balance: 0},
		},
	}
}

func seedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("crowdtrain:"+name)).String()
}
