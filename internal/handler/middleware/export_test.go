package middleware

func (l *RateLimiter) LocalBuckets() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.local)
}
