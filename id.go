package rclcpp

import "github.com/jhdcs/rclcpp/id"

// ID is the primary identifier type for all callback-source entities.
type ID = id.EntityID

// Prefix identifies the entity type encoded in a TypeID.
type Prefix = id.Prefix
