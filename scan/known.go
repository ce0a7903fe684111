package scan

// Common TCP service names taken from
// https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
// Run go generate to replace this with the full registry.
var knownPorts = map[int]string{
	1:     "tcpmux",
	7:     "echo",
	9:     "discard",
	13:    "daytime",
	17:    "qotd",
	19:    "chargen",
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	37:    "time",
	43:    "nicname",
	49:    "tacacs",
	53:    "domain",
	70:    "gopher",
	79:    "finger",
	80:    "http",
	88:    "kerberos",
	102:   "iso-tsap",
	110:   "pop3",
	111:   "sunrpc",
	113:   "ident",
	119:   "nntp",
	123:   "ntp",
	135:   "epmap",
	137:   "netbios-ns",
	139:   "netbios-ssn",
	143:   "imap",
	161:   "snmp",
	179:   "bgp",
	194:   "irc",
	389:   "ldap",
	443:   "https",
	445:   "microsoft-ds",
	465:   "submissions",
	500:   "isakmp",
	513:   "login",
	514:   "shell",
	515:   "printer",
	543:   "klogin",
	544:   "kshell",
	548:   "afpovertcp",
	554:   "rtsp",
	587:   "submission",
	631:   "ipp",
	636:   "ldaps",
	873:   "rsync",
	989:   "ftps-data",
	990:   "ftps",
	993:   "imaps",
	995:   "pop3s",
	1080:  "socks",
	1194:  "openvpn",
	1433:  "ms-sql-s",
	1521:  "ncube-lm",
	1723:  "pptp",
	1883:  "mqtt",
	2049:  "nfs",
	2181:  "eforward",
	2375:  "docker",
	2376:  "docker-s",
	3128:  "ndl-aas",
	3260:  "iscsi-target",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	3690:  "svn",
	4369:  "epmd",
	5060:  "sip",
	5222:  "xmpp-client",
	5432:  "postgresql",
	5672:  "amqp",
	5900:  "rfb",
	5984:  "couchdb",
	6379:  "redis",
	6443:  "sun-sr-https",
	6667:  "ircu",
	8080:  "http-alt",
	8443:  "pcsync-https",
	8883:  "secure-mqtt",
	9000:  "cslistener",
	9042:  "cassandra",
	9092:  "XmlIpcRegSvc",
	9100:  "pdl-datastream",
	9200:  "wap-wsp",
	11211: "memcache",
	27017: "mongodb",
}
