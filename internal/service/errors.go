package service

import "errors"

var (
	ErrTemplateNotFound = errors.New("phase template not found")
	ErrProjectNotFound  = errors.New("project not found")
)
