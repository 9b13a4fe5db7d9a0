package handler

import "strings"

// cliSignatures подстроки User-Agent консольных и программных клиентов
var cliSignatures = []string{
	"curl",
	"wget",
	"powershell",
	"httpie",
	"python-requests",
	"python-urllib",
	"go-http-client",
	"fetch",
	"aria2",
	"http_client",
	"winhttp",
	"axios",
	"node-fetch",
}

// IsCLIUserAgent сообщает, принадлежит ли User-Agent консольному клиенту
func IsCLIUserAgent(ua string) bool {
	ua = strings.ToLower(ua)
	if ua == "" {
		return false
	}
	for _, sig := range cliSignatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}
	return false
}
