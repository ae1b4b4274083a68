package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

type InsertResponse struct {
	InsertedID primitive.ObjectID `json:"insertedId"`
}

type UpdateResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
