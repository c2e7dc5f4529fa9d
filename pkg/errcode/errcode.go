package errcode

import "fmt"

// unknownCodeMessage renders codes that are not part of a table.
func unknownCodeMessage(code int) string {
	return fmt.Sprintf("ErrorCode = %d", code)
}

// ConvertResponse is an error code returned by the conversion service.
type ConvertResponse int

const (
	ConvertUnknown     ConvertResponse = -1
	ConvertTimeout     ConvertResponse = -2
	ConvertConversion  ConvertResponse = -3
	ConvertDownloading ConvertResponse = -4
	ConvertPassword    ConvertResponse = -5
	ConvertDatabase    ConvertResponse = -6
	ConvertInput       ConvertResponse = -7
	ConvertToken       ConvertResponse = -8
)

var convertMessages = map[ConvertResponse]string{
	ConvertUnknown:     "Unknown error",
	ConvertTimeout:     "Timeout conversion error",
	ConvertConversion:  "Conversion error",
	ConvertDownloading: "Error while downloading the document file to be converted",
	ConvertPassword:    "Incorrect password",
	ConvertDatabase:    "Error while accessing the conversion result database",
	ConvertInput:       "Error document request",
	ConvertToken:       "Invalid token",
}

// Known reports whether the code belongs to the table.
func (c ConvertResponse) Known() bool {
	_, ok := convertMessages[c]
	return ok
}

// Message returns the table message or "ErrorCode = N" for unknown codes.
func (c ConvertResponse) Message() string {
	if m, ok := convertMessages[c]; ok {
		return m
	}
	return unknownCodeMessage(int(c))
}

// CommandResponse is an error code returned by the command service.
type CommandResponse int

const (
	CommandNo             CommandResponse = 0
	CommandKey            CommandResponse = 1
	CommandCallbackURL    CommandResponse = 2
	CommandInternalServer CommandResponse = 3
	CommandForceSave      CommandResponse = 4
	CommandCommand        CommandResponse = 5
	CommandToken          CommandResponse = 6
)

var commandMessages = map[CommandResponse]string{
	CommandNo:             "No errors",
	CommandKey:            "Document key is missing or no document with such key could be found",
	CommandCallbackURL:    "Callback url not correct",
	CommandInternalServer: "Internal server error",
	CommandForceSave:      "No changes were applied to the document before the forcesave command was received",
	CommandCommand:        "Command not correct",
	CommandToken:          "Invalid token",
}

func (c CommandResponse) Known() bool {
	_, ok := commandMessages[c]
	return ok
}

// Message returns the table message or "ErrorCode = N" for unknown codes.
func (c CommandResponse) Message() string {
	if m, ok := commandMessages[c]; ok {
		return m
	}
	return unknownCodeMessage(int(c))
}

// CommonError identifies SDK-side failures reported to operators.
type CommonError int

const (
	CommonNoHealthcheckEndpoint    CommonError = 1
	CommonNoDocumentServerURL      CommonError = 2
	CommonNoConvertServiceEndpoint CommonError = 3
	CommonNoJwtHeader              CommonError = 4
	CommonNoJwtPrefix              CommonError = 5
	CommonReadXML                  CommonError = 6
	CommonBadResponseXML           CommonError = 7
	CommonNoCommandEndpoint        CommonError = 8
	CommonMixedContent             CommonError = 9
	CommonBadHealthcheckStatus     CommonError = 10
	CommonDocserviceError          CommonError = 11
	CommonNotSupportedVersion      CommonError = 12
	CommonEmptyFormatsAsset        CommonError = 13
	CommonCallbackNoAuthToken      CommonError = 14
	CommonCallbackNoStatus         CommonError = 15
	CommonUnknownExt               CommonError = 16
	CommonFileNotFound             CommonError = 17
	CommonBadResponseJSON          CommonError = 18
)

var commonMessages = map[CommonError]string{
	CommonNoHealthcheckEndpoint:    "There is no healthcheck endpoint in the application configuration",
	CommonNoDocumentServerURL:      "There is no document server URL in the application configuration",
	CommonNoConvertServiceEndpoint: "There is no convert service endpoint in the application configuration",
	CommonNoJwtHeader:              "There is no JWT header in the application configuration",
	CommonNoJwtPrefix:              "There is no JWT prefix in the application configuration",
	CommonReadXML:                  "Can't read XML",
	CommonBadResponseXML:           "Bad response",
	CommonNoCommandEndpoint:        "There is no command endpoint in the application configuration",
	CommonMixedContent:             "Mixed Active Content is not allowed. HTTPS address for ONLYOFFICE Docs is required",
	CommonBadHealthcheckStatus:     "Bad healthcheck status",
	CommonDocserviceError:          "Error occurred in the document service",
	CommonNotSupportedVersion:      "Not supported version",
	CommonEmptyFormatsAsset:        "formats submodule error",
	CommonCallbackNoAuthToken:      "Not found authentication token",
	CommonCallbackNoStatus:         "Callback has no status",
	CommonUnknownExt:               "Unknown file extension",
	CommonFileNotFound:             "File not found",
	CommonBadResponseJSON:          "Bad response",
}

func (c CommonError) Known() bool {
	_, ok := commonMessages[c]
	return ok
}

// Message returns the table message or "ErrorCode = N" for unknown codes.
func (c CommonError) Message() string {
	if m, ok := commonMessages[c]; ok {
		return m
	}
	return unknownCodeMessage(int(c))
}
