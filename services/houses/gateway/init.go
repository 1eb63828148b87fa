package gateway

import "context"

// Publisher is the subset of the NSQ producer used by the gateway
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// HouseGW implements houses.HouseGW
type HouseGW struct {
	publisher Publisher
}

func NewHouseGW(publisher Publisher) *HouseGW {
	return &HouseGW{publisher: publisher}
}
