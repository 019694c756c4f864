package redisx

import "time"

const (
	// Canonical order JSON by id: order:{order_id}
	KeyOrder = "order:%s"
)

var TTLOrderCache = 5 * time.Minute
