package nskeyed

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Mandatory, type-checked keys of an XCTestConfiguration record.
const (
	testBundleURLKey     = "testBundleURL"
	sessionIdentifierKey = "sessionIdentifier"
)

// defaultTestConfiguration returns a fresh copy of the full default table.
// Nil entries are keys the record carries explicitly with no value.
func defaultTestConfiguration() map[string]any {
	return map[string]any{
		"aggregateStatisticsBeforeCrash": map[string]any{
			"XCSuiteRecordsKey": map[string]any{},
		},
		"automationFrameworkPath":           "/Developer/Library/PrivateFrameworks/XCTAutomationSupport.framework",
		"baselineFileRelativePath":          nil,
		"baselineFileURL":                   nil,
		"defaultTestExecutionTimeAllowance": nil,
		"disablePerformanceMetrics":         false,
		"emitOSLogs":                        false,
		"formatVersion":                     2,
		"gatherLocalizableStringsData":      false,
		"initializeForUITesting":            true,
		"maximumTestExecutionTimeAllowance": nil,
		"productModuleName":                 "WebDriverAgentRunner",
		"randomExecutionOrderingSeed":       nil,
		"reportActivities":                  true,
		"reportResultsToIDE":                true,
		"systemAttachmentLifetime":          2,
		"targetApplicationArguments":        []any{},
		"targetApplicationBundleID":         nil,
		"targetApplicationEnvironment":      nil,
		"targetApplicationPath":             nil,
		"testApplicationDependencies":       map[string]any{},
		"testApplicationUserOverrides":      nil,
		"testBundleRelativePath":            nil,
		"testExecutionOrdering":             0,
		"testTimeoutsEnabled":               false,
		"testsDrivenByIDE":                  false,
		"testsMustRunOnMainThread":          true,
		"testsToRun":                        nil,
		"testsToSkip":                       nil,
		"treatMissingBaselinesAsFailures":   false,
		"userAttachmentLifetime":            1,
	}
}

// TestConfiguration is an archived XCTestConfiguration record: the full
// default table overlaid with caller-supplied overrides at construction
// time. No further defaulting occurs after that point. Encode-only; the
// archived format defines no decode direction for it.
type TestConfiguration struct {
	kv map[string]any
}

// NewTestConfiguration overlays kv onto the default table. kv must carry
// testBundleURL holding a URL and sessionIdentifier holding a UUID;
// absence or a wrong type fails construction.
func NewTestConfiguration(kv map[string]any) (*TestConfiguration, error) {
	bundleURL, ok := kv[testBundleURLKey]
	if !ok {
		return nil, newConstructionError(ErrMissingField, "XCTestConfiguration", testBundleURLKey, "")
	}
	switch bundleURL.(type) {
	case URL, *URL:
	default:
		return nil, newConstructionError(ErrFieldType, "XCTestConfiguration", testBundleURLKey, "nskeyed.URL")
	}

	session, ok := kv[sessionIdentifierKey]
	if !ok {
		return nil, newConstructionError(ErrMissingField, "XCTestConfiguration", sessionIdentifierKey, "")
	}
	switch session.(type) {
	case UUID, uuid.UUID:
	default:
		return nil, newConstructionError(ErrFieldType, "XCTestConfiguration", sessionIdentifierKey, "nskeyed.UUID")
	}

	merged := defaultTestConfiguration()
	for k, v := range kv {
		merged[k] = v
	}
	return &TestConfiguration{kv: merged}, nil
}

// Get returns the value stored under key.
func (c *TestConfiguration) Get(key string) (any, bool) {
	v, ok := c.kv[key]
	return v, ok
}

// Set stores value under key, replacing any default or override.
func (c *TestConfiguration) Set(key string, value any) {
	c.kv[key] = value
}

// Keys returns the merged key set in sorted order.
func (c *TestConfiguration) Keys() []string {
	keys := make([]string, 0, len(c.kv))
	for k := range c.kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether both configurations hold the same key/value set.
func (c *TestConfiguration) Equal(other *TestConfiguration) bool {
	return reflect.DeepEqual(c.kv, other.kv)
}

func (c *TestConfiguration) String() string {
	var b strings.Builder
	b.WriteString("XCTestConfiguration(")
	for i, k := range c.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, c.kv[k])
	}
	b.WriteString(")")
	return b.String()
}

// encodeTestConfiguration is the XCTestConfiguration encode delegate.
// Every merged key is written under its own name verbatim; the NS-prefix
// translation does not apply here. Keys are written in sorted order so the
// output is deterministic.
func encodeTestConfiguration(obj any, archive Archive) error {
	var c *TestConfiguration
	switch v := obj.(type) {
	case *TestConfiguration:
		c = v
	case TestConfiguration:
		c = &v
	default:
		return newAdapterError(ErrFieldType, "XCTestConfiguration", "")
	}

	for _, k := range c.Keys() {
		if err := archive.Encode(k, c.kv[k]); err != nil {
			return err
		}
	}
	return nil
}

// activityRecordKeys are the only meaningful keys of an XCActivityRecord,
// read in this order.
var activityRecordKeys = [...]string{
	"activityType",
	"attachments",
	"finish",
	"start",
	"title",
	"uuid",
}

// ActivityRecord is an archived XCActivityRecord: a record restricted to
// the six fixed keys above. Decode-only; the archived format defines no
// encode direction for it.
type ActivityRecord map[string]any

func (r ActivityRecord) String() string {
	attrs := make([]string, 0, len(activityRecordKeys))
	for _, key := range activityRecordKeys {
		attrs = append(attrs, fmt.Sprintf("%s=%v", key, r[key]))
	}
	return fmt.Sprintf("XCActivityRecord(%s)", strings.Join(attrs, ", "))
}

// decodeActivityRecord is the XCActivityRecord decode delegate. It reads
// exactly the six fixed keys, ignoring anything else in the source record.
func decodeActivityRecord(archive Archive) (any, error) {
	rec := make(ActivityRecord, len(activityRecordKeys))
	for _, key := range activityRecordKeys {
		value, err := archive.Decode(key)
		if err != nil {
			return nil, err
		}
		rec[key] = value
	}
	return rec, nil
}
