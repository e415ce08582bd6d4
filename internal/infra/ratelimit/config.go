package ratelimit

type LimiterConfig struct {
	Key      string
	Capacity int
	RatePS   float64 // tokens/秒
}

func (l *LimiterConfig) SetCapacity(capacity int) {
	l.Capacity = capacity
}

func (l *LimiterConfig) SetRatePS(rate float64) {
	l.RatePS = rate
}

func (l *LimiterConfig) SetKey(key string) {
	l.Key = key
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Key:      "global",
		Capacity: 100,
		RatePS:   50,
	}
}
