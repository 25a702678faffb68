package usecase

import (
	"context"
	"time"

	"headend/internal/domain/entity"
)

// ConsoleState is a coherent snapshot of every collection the console
// renders, refreshed by live store listeners.
type ConsoleState struct {
	Subscribers []*entity.Subscriber    `json:"subscribers"`
	Requests    []*entity.DeviceRequest `json:"requests"`
	Categories  []*entity.Category      `json:"categories"`
	Bouquets    []*entity.Bouquet       `json:"bouquets"`
	Channels    []*entity.Channel       `json:"channels"`
	Packages    []*entity.Package       `json:"packages"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// DashboardStats summarizes the operator's landing view.
type DashboardStats struct {
	TotalSubscribers   int `json:"totalSubscribers"`
	ActiveSubscribers  int `json:"activeSubscribers"`
	ExpiredSubscribers int `json:"expiredSubscribers"`
	PendingRequests    int `json:"pendingRequests"`
	ChannelCount       int `json:"channelCount"`
	PackageCount       int `json:"packageCount"`
}

// ConsoleUsecase exposes the live console state maintained by the store
// listeners.
type ConsoleUsecase interface {
	// State returns the latest snapshot of all console collections.
	State(ctx context.Context) (*ConsoleState, error)

	// Dashboard computes summary statistics from the latest snapshot.
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
