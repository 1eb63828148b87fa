package constants

// NSQ topics
const (
	TopicUserDeleted  = "user_deleted"
	TopicHouseCreated = "house_created"
)

// NSQ channels
const (
	ChannelHouses = "houses"
)
