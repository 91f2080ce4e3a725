package notification

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type NotificationService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// RecordTransfer writes a notification for both sides of a completed
// purchase.
func (ns *NotificationService) RecordTransfer(buyerUserID, sellerUserID int, playerName string, pricePaid int64) error {
	now := time.Now()
	notifs := []Notification{
		{
			UserID:      buyerUserID,
			Description: fmt.Sprintf("You signed %s for %d", playerName, pricePaid),
			Status:      "unseen",
			CreatedAt:   now,
		},
		{
			UserID:      sellerUserID,
			Description: fmt.Sprintf("%s was sold for %d", playerName, pricePaid),
			Status:      "unseen",
			CreatedAt:   now,
		},
	}

	err := ns.DB.Table("notifications").Create(&notifs).Error
	if err != nil {
		return fmt.Errorf("not able to record transfer notifications with err: %v", err)
	}
	return nil
}

func (ns *NotificationService) GetNotifications(userID int) ([]Notification, error) {
	notifications := make([]Notification, 0)
	err := ns.DB.Table("notifications").Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (ns *NotificationService) MarkSeen(userID int) error {
	err := ns.DB.Exec("UPDATE notifications SET status = ? WHERE user_id = ?", "seen", userID).Error
	if err != nil {
		return fmt.Errorf("not able to update status of notification with err: %v", err)
	}
	return nil
}
