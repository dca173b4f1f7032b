package kafka

var NewMailerWithWriter = newMailerWithWriter
