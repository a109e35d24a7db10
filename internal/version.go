package internal

// Version is the current bookbabel release version
const Version = "0.3.1"
