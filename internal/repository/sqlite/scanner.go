package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var createdAt, updatedAt string

	err := scanner.Scan(
		&task.ID,
		&task.Category,
		&task.TaskName,
		&task.SortOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if task.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanEvent scans a single event from a database row
func ScanEvent(scanner Scanner) (*Event, error) {
	event := &Event{}
	var startDate, endDate, createdAt, updatedAt string

	err := scanner.Scan(
		&event.ID,
		&event.TaskID,
		&startDate,
		&endDate,
		&event.Label,
		&event.Color,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if event.StartDate, err = ParseDateFromDB(startDate); err != nil {
		return nil, err
	}
	if event.EndDate, err = ParseDateFromDB(endDate); err != nil {
		return nil, err
	}
	if event.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if event.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}

	return event, nil
}

// ScanEvents scans multiple events from database rows
func ScanEvents(rows Rows) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		event, err := ScanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ScanEventType scans a single custom event type from a database row
func ScanEventType(scanner Scanner) (*CustomEventType, error) {
	eventType := &CustomEventType{}
	var createdAt string

	err := scanner.Scan(
		&eventType.ID,
		&eventType.Label,
		&eventType.Color,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if eventType.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return eventType, nil
}

// ScanEventTypes scans multiple custom event types from database rows
func ScanEventTypes(rows Rows) ([]*CustomEventType, error) {
	var eventTypes []*CustomEventType
	for rows.Next() {
		eventType, err := ScanEventType(rows)
		if err != nil {
			return nil, err
		}
		eventTypes = append(eventTypes, eventType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return eventTypes, nil
}
