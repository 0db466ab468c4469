package cmd

import "time"

type Config struct {
	DataFile       string
	DeliveryWindow time.Duration
	EnRouteAfter   time.Duration
	DeliveredAfter time.Duration
	AdminLogin     string
	AdminPassword  string
}
