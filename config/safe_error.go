package config

// SafeErrorMessage returns err's text outside release mode and the fallback in release
// mode, so storage internals never reach clients in production.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
