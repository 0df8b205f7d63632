package log

const (
	// FldFile is the name of the log field for storing file name information
	FldFile = "file"
	// FldPath is the name of the log field for storing path name information
	FldPath = "path"
	// FldTransport is the name of the log field for storing a transport name
	FldTransport = "transport"
	// FldSession is the name of the log field for storing the session ID
	FldSession = "session"
	// FldVersion is the version number of the application
	FldVersion = "ver"
	// FldIP is the IP address used in the log entry
	FldIP = "ip"
	// FldID is the ID of an entity used in the log entry
	FldID = "id"
	// FldName is the name of an event
	FldName = "name"
	// FldEventDate is the date an event takes place at
	FldEventDate = "eventDate"
	// FldSlug is the slug derived from an event's name
	FldSlug = "slug"
	// FldMethod is the HTTP method of a request
	FldMethod = "method"
	// FldStatus is the HTTP status code of a response
	FldStatus = "status"
	// FldDuration is the time it took to handle a request
	FldDuration = "duration"
	// FldAddr is the address the server listens at
	FldAddr = "addr"
)
