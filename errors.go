package rclcpp

import "errors"

var (
	// Membership errors.
	ErrNilEntity      = errors.New("rclcpp: nil entity handle")
	ErrAlreadyInGroup = errors.New("rclcpp: entity already in callback group")
	ErrNotInGroup     = errors.New("rclcpp: entity not in callback group")
)
